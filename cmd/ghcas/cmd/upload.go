package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aweris/ghcas"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files and print their URLs",
	Long: "Upload files under their MD5 fingerprint name and print one URL per file. " +
		"Files already present in the record database are not uploaded again.",
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().IntP("concurrency", "j", defaultConcurrency, "parallel uploads")
	viper.BindPFlag("concurrency", uploadCmd.Flags().Lookup("concurrency"))

	rootCmd.AddCommand(uploadCmd)
}

type uploadResult struct {
	file    string
	name    string
	outcome ghcas.Outcome
}

// uploaded reports whether the result carries an outcome from the remote.
func (r uploadResult) uploaded() bool { return r.outcome.URL != "" }

func runUpload(cmd *cobra.Command, args []string) (err error) {
	s, release, err := openSession(true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	concurrency := viper.GetInt("concurrency")
	if concurrency < 1 {
		concurrency = 1
	}

	bar := pb.Full.New(len(args)).SetWriter(os.Stderr).Start()
	results := make([]uploadResult, len(args))

	p := pool.New().WithMaxGoroutines(concurrency).WithContext(cmd.Context())
	for i, file := range args {
		p.Go(func(ctx context.Context) error {
			defer bar.Increment()

			var err error
			results[i], err = uploadFile(ctx, s.uploader, s.records, file)
			return err
		})
	}
	perr := p.Wait()
	bar.Finish()

	if failed := reportUploads(cmd.OutOrStdout(), cmd.ErrOrStderr(), results); failed > 0 && perr == nil {
		return fmt.Errorf("%d of %d uploads rejected", failed, len(args))
	}
	return perr
}

// uploadFile reads and uploads one file. The result keeps the outcome even
// when recording it fails after the commit landed.
func uploadFile(ctx context.Context, up *ghcas.Uploader, records ghcas.RecordStore, file string) (uploadResult, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return uploadResult{file: file}, fmt.Errorf("read %s: %w", file, err)
	}

	display := filepath.Base(file)
	res := uploadResult{file: file, name: ghcas.StorageName(data, display)}

	res.outcome, err = up.Put(ctx, records, data, res.name, display)
	if err != nil {
		return res, fmt.Errorf("upload %s: %w", file, err)
	}
	return res, nil
}

// reportUploads prints URLs to out and rejections to errOut and returns the
// number of rejections.
func reportUploads(out, errOut io.Writer, results []uploadResult) int {
	failed := 0
	for _, r := range results {
		switch {
		case !r.uploaded():
			// errored before an outcome
		case r.outcome.OK():
			fmt.Fprintln(out, r.outcome.URL)
		default:
			failed++
			fmt.Fprintf(errOut, "%s: %s\n", r.file, r.outcome.Message)
		}
	}
	return failed
}
