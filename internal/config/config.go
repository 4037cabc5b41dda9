package config

import (
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/viper"

	"droidbridge/internal/domain"
	appErrors "droidbridge/internal/errors"
)

// Config is the explicit configuration value handed to every component at
// construction. Flags override env vars, env vars override the config file.
type Config struct {
	RemoteCandidates []string         `mapstructure:"remote_candidates"`
	WorldsSubpath    string           `mapstructure:"worlds_subpath"`
	MountPoint       string           `mapstructure:"mount_point"`
	Transport        domain.Transport `mapstructure:"transport"`
	SudoMode         bool             `mapstructure:"sudo_mode"`
	StagingDir       string           `mapstructure:"staging_dir"`
	BackupDir        string           `mapstructure:"backup_dir"`
	Logging          Logging          `mapstructure:"logging"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// WorldsRoot joins the resolved storage root with the world-store subpath.
func (c *Config) WorldsRoot(storageRoot string) string {
	return path.Join(storageRoot, c.WorldsSubpath)
}

func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("$HOME/.droidbridge")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/droidbridge")
	}

	v.SetEnvPrefix("DROIDBRIDGE")
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault("remote_candidates", []string{
		"/sdcard",
		"/storage/emulated/0",
		"/storage/self/primary",
	})
	v.SetDefault("worlds_subpath", "games/com.mojang/minecraftWorlds")
	v.SetDefault("mount_point", filepath.Join(home, "android"))
	v.SetDefault("transport.host", "")
	v.SetDefault("transport.port", 8022)
	v.SetDefault("transport.user", "")
	v.SetDefault("sudo_mode", false)
	v.SetDefault("staging_dir", filepath.Join(home, "droidbridge", "staging"))
	v.SetDefault("backup_dir", filepath.Join(home, "droidbridge", "backups"))
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, appErrors.Wrap(appErrors.InvalidConfig, "config", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, appErrors.Wrap(appErrors.InvalidConfig, "config", v.ConfigFileUsed(), err)
	}

	if len(cfg.RemoteCandidates) == 0 {
		return nil, appErrors.New(appErrors.InvalidConfig, "config", "", "remote_candidates must not be empty")
	}

	return &cfg, nil
}
