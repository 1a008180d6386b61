package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aweris/ghcas/internal/logging"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List local upload records",
	Long:  "List records in the local database, newest first, optionally filtered by uploader.",
	Args:  cobra.NoArgs,
	RunE:  runRecords,
}

func init() {
	recordsCmd.Flags().String("uploader", "", "only show records from this uploader")
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) (err error) {
	uploader, _ := cmd.Flags().GetString("uploader")

	logger, _ := logging.New(viper.GetString("log_level"))
	records, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := records.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	list, err := records.Records(cmd.Context(), uploader)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range list {
		fmt.Fprintf(out, "%s\t%s\t%s\n", r.Name, r.UploadWay, r.CreatedAt.Format(time.RFC3339))
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "(no records)")
	}

	total, err := records.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d records\n", len(list), total)
	return nil
}
