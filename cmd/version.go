package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set by -ldflags "-X github.com/theirongolddev/safespend/cmd.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("safespend %s (%s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}
