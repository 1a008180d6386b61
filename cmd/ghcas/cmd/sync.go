package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild local records from the branch",
	Long:  "List the configured branch and record every fingerprint-named file in the local database.",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) (err error) {
	s, release, err := openSession(true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	t := s.uploader.Target()
	fmt.Fprintf(os.Stderr, "Syncing %s/%s@%s...\n", t.Owner, t.Repo, t.Branch)

	n, err := s.uploader.Sync(cmd.Context(), s.records, &barObserver{w: os.Stderr})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	total, err := s.records.Count(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Done. %d synced, %d records in %s.\n", n, total, viper.GetString("db"))
	return nil
}
