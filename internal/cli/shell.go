package cli

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive shell on the device",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}
		return bridge.InteractiveShell(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
