package cli

import (
	"github.com/spf13/cobra"

	"droidbridge/internal/infra/adb"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List attached ADB devices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bridge, err := adb.New(logger)
		if err != nil {
			return err
		}
		serials, err := bridge.Devices(cmd.Context())
		if err != nil {
			return err
		}
		printer.PrintDevices(serials)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
