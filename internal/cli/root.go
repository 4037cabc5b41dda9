package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"droidbridge/internal/config"
	appErrors "droidbridge/internal/errors"
	"droidbridge/internal/infra/adb"
	"droidbridge/internal/logging"
	"droidbridge/internal/presentation"
)

var (
	cfgFile     string
	flagVerbose bool

	cfg     *config.Config
	logger  zerolog.Logger
	printer presentation.Printer
)

var rootCmd = &cobra.Command{
	Use:   "droidbridge",
	Short: "Retrieve, inspect and archive files on an Android device",
	Long: `droidbridge orchestrates two access channels to an Android device:
the ADB debug bridge and a user-level SSHFS mount.

It resolves which of the device's storage layouts is actually present,
manages the SSHFS mount lifecycle, performs safe transactional moves
(copy, confirm, then delete), and packages Minecraft world saves into
portable .mcworld archives.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
}

func initApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Transport.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Transport.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("user") {
		cfg.Transport.User, _ = flags.GetString("user")
	}
	if flags.Changed("mount-point") {
		cfg.MountPoint, _ = flags.GetString("mount-point")
	}
	if flags.Changed("sudo") {
		cfg.SudoMode, _ = flags.GetBool("sudo")
	}

	level := cfg.Logging.Level
	if flagVerbose {
		level = "debug"
	}
	logger = logging.New(os.Stderr, level)
	printer = presentation.Printer{Writer: os.Stdout}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default searches $HOME/.droidbridge, ., /etc/droidbridge)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	pf.String("host", "", "device SSH host")
	pf.Int("port", 0, "device SSH port")
	pf.String("user", "", "device SSH user")
	pf.String("mount-point", "", "local mount point")
	pf.Bool("sudo", false, "run the mount tool through sudo")
}

// newBridge builds the ADB client and checks that a device is attached. The
// serials come back alongside the client so callers never re-list devices
// (the device can detach between two listings).
func newBridge(cmd *cobra.Command) (*adb.Client, []string, error) {
	bridge, err := adb.New(logger)
	if err != nil {
		return nil, nil, err
	}
	serials, err := bridge.Devices(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	if len(serials) == 0 {
		return nil, nil, appErrors.New(appErrors.Unreachable, "devices", "",
			"no device attached (enable USB debugging and check the cable)")
	}
	return bridge, serials, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}
