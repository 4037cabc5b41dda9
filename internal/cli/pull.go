package cli

import (
	"github.com/spf13/cobra"

	"droidbridge/internal/app"
	"droidbridge/internal/tui"
)

var pullCmd = &cobra.Command{
	Use:   "pull <remote> <local>",
	Short: "Copy a file or directory from the device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}
		engine := &app.TransferEngine{Bridge: bridge, Log: logger}
		return tui.Run("Pulling "+args[0], func(app.ProgressFunc) error {
			return engine.Pull(cmd.Context(), args[0], args[1])
		})
	},
}

var pushCmd = &cobra.Command{
	Use:   "push <local> <remote>",
	Short: "Copy a file or directory to the device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}
		engine := &app.TransferEngine{Bridge: bridge, Log: logger}
		return tui.Run("Pushing "+args[0], func(app.ProgressFunc) error {
			return engine.Push(cmd.Context(), args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
}
