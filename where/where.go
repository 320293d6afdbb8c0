// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "THUMBGRAB_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It can be overridden with the THUMBGRAB_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Thumbgrab))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Downloads resolves the directory downloaded thumbnails are written to.
// The downloads.path setting takes precedence over the per-user default.
func Downloads() string {
	if custom := viper.GetString(key.DownloadsPath); custom != "" {
		return ensureDir(custom)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDir(filepath.Join(Temp(), "downloads"))
	}
	return ensureDir(filepath.Join(home, "Downloads", constant.Thumbgrab))
}

// Temp resolves a volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Thumbgrab))
}
