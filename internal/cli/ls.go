package cli

import (
	"path"
	"strings"

	"github.com/spf13/cobra"

	"droidbridge/internal/app"
)

var lsCmd = &cobra.Command{
	Use:   "ls [remote-path]",
	Short: "List a remote directory (hidden entries filtered)",
	Long: `Lists a directory on the device over the debug bridge. A relative or
omitted path is joined onto the first reachable storage-root candidate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}

		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		if !strings.HasPrefix(target, "/") {
			resolver := app.Resolver{Bridge: bridge, Log: logger}
			root, err := resolver.Resolve(ctx, cfg.RemoteCandidates)
			if err != nil {
				return err
			}
			target = path.Join(root, target)
		}

		engine := &app.TransferEngine{Bridge: bridge, Log: logger}
		entries, err := engine.ListDir(ctx, target)
		if err != nil {
			return err
		}
		printer.PrintEntries(entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
