package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aweris/ghcas"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Print blob hash and storage name of files",
	Long:  "Print the git blob hash sent as the write guard and the fingerprint name a file would be stored under.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
			ghcas.BlobHash(data), ghcas.StorageName(data, filepath.Base(file)), file)
	}
	return nil
}
