package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"droidbridge/internal/app"
	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
	"droidbridge/internal/infra/archive"
	"droidbridge/internal/tui"
)

var (
	backupAll     bool
	backupArchive bool
	backupOut     string
	backupStaging string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Enumerate and retrieve Minecraft world saves",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List world saves on the device",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		bridge, _, err := newBridge(cmd)
		if err != nil {
			return err
		}
		root, err := app.Resolver{Bridge: bridge, Log: logger}.Resolve(ctx, cfg.RemoteCandidates)
		if err != nil {
			return err
		}
		catalog := app.Catalog{Bridge: bridge, Log: logger}
		entries, err := catalog.ListWorlds(ctx, cfg.WorldsRoot(root))
		if err != nil {
			return err
		}
		printer.PrintWorlds(entries)
		return nil
	},
}

var backupPullCmd = &cobra.Command{
	Use:   "pull [world-id]",
	Short: "Stage selected worlds locally, write a manifest, optionally archive",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if !backupAll && len(args) == 0 {
			return appErrors.New(appErrors.InvalidConfig, "backup", "",
				"name a world id or pass --all")
		}

		bridge, serials, err := newBridge(cmd)
		if err != nil {
			return err
		}
		root, err := app.Resolver{Bridge: bridge, Log: logger}.Resolve(ctx, cfg.RemoteCandidates)
		if err != nil {
			return err
		}

		catalog := app.Catalog{Bridge: bridge, Log: logger}
		entries, err := catalog.ListWorlds(ctx, cfg.WorldsRoot(root))
		if err != nil {
			return err
		}
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		selected, err := catalog.Select(entries, id, backupAll)
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		backuper := app.Backuper{Bridge: bridge, FS: fsys, Log: logger}
		exporter := app.Exporter{Archiver: archive.ZipWriter{FS: fsys}, FS: fsys, Log: logger}

		stagingRoot := backupStaging
		if stagingRoot == "" {
			stagingRoot = cfg.StagingDir
		}
		outputRoot := backupOut
		if outputRoot == "" {
			outputRoot = cfg.BackupDir
		}

		manifest := domain.Manifest{
			Host:      cfg.Transport.Host,
			Device:    serials[0],
			CreatedAt: time.Now(),
		}

		failures := 0
		for _, entry := range selected {
			var localDir string
			var item domain.ManifestItem
			err := tui.Run("Pulling "+entry.DisplayName(), func(app.ProgressFunc) error {
				var pullErr error
				localDir, item, pullErr = backuper.PullWorld(ctx, entry, stagingRoot)
				return pullErr
			})
			if err != nil {
				logger.Warn().Str("world", entry.ID).Err(err).Msg("world retrieval failed")
				failures++
				manifest.Items = append(manifest.Items, item)
				continue
			}
			if backupArchive {
				if _, err := exporter.Export(localDir, entry.Name, entry.ID, outputRoot); err != nil {
					logger.Warn().Str("world", entry.ID).Err(err).Msg("archive export failed")
					item.Complete = false
				}
			}
			manifest.Items = append(manifest.Items, item)
		}

		if err := backuper.WriteManifest(manifest, stagingRoot); err != nil {
			return err
		}
		printer.PrintManifest(manifest)

		if failures == len(selected) && failures > 0 {
			return appErrors.Newf(appErrors.IOFailure, "backup", "",
				"all %d world retrievals failed", failures)
		}
		if failures > 0 {
			fmt.Fprintln(os.Stderr, appErrors.UserMessage(appErrors.Newf(appErrors.PartialFailure, "backup", "",
				"%d of %d world retrievals failed; the manifest marks the incomplete items", failures, len(selected))))
		}
		return nil
	},
}

func init() {
	backupPullCmd.Flags().BoolVar(&backupAll, "all", false, "retrieve every world")
	backupPullCmd.Flags().BoolVar(&backupArchive, "archive", false, "also export each world as a .mcworld archive")
	backupPullCmd.Flags().StringVar(&backupOut, "out", "", "archive output directory (default from config)")
	backupPullCmd.Flags().StringVar(&backupStaging, "staging", "", "staging directory (default from config)")

	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupPullCmd)
	rootCmd.AddCommand(backupCmd)
}
