package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url <filename>...",
	Short: "Print the public URL of stored files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) (err error) {
	s, release, err := openSession(false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, name := range args {
		fmt.Fprintln(cmd.OutOrStdout(), s.uploader.URL(name))
	}
	return nil
}
