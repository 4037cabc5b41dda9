package cli

import (
	"github.com/spf13/cobra"

	"droidbridge/internal/app"
	"droidbridge/internal/domain"
	"droidbridge/internal/infra/sshfs"
	"droidbridge/internal/tui"
)

var mountCmd = &cobra.Command{
	Use:   "mount [mount-point]",
	Short: "Mount device storage over SSHFS",
	Long: `Tries each storage-root candidate in order against the device's SSH
server, verifies the mount through independent detection signals, and rolls
back half-established mounts before moving on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mountPoint := cfg.MountPoint
		if len(args) == 1 {
			mountPoint = args[0]
		}

		manager := &app.MountManager{Mounter: sshfs.New(logger), Log: logger}

		var session *domain.MountSession
		err := tui.Run("Mounting device storage", func(app.ProgressFunc) error {
			var mountErr error
			session, mountErr = manager.Mount(cmd.Context(), cfg.RemoteCandidates, mountPoint, cfg.Transport, cfg.SudoMode)
			return mountErr
		})
		if err != nil {
			return err
		}
		printer.PrintMountSession(session)
		return nil
	},
}

var unmountCmd = &cobra.Command{
	Use:     "unmount [mount-point]",
	Aliases: []string{"umount"},
	Short:   "Unmount device storage (no-op when not mounted)",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mountPoint := cfg.MountPoint
		if len(args) == 1 {
			mountPoint = args[0]
		}
		manager := &app.MountManager{Mounter: sshfs.New(logger), Log: logger}
		return manager.Unmount(cmd.Context(), mountPoint)
	},
}

func init() {
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(unmountCmd)
}
