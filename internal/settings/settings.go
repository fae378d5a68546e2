// Package settings loads the process level switches of the mvg tools from
// the environment and an optional config file.
package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/logging"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// EnvPrefix prefixes every environment variable, e.g. MVG_LOG_LEVEL.
const EnvPrefix = "MVG"

const (
	keyLogLevel   = "log_level"
	keyJSONLog    = "json_log"
	keyEnableLiGT = "enable_ligt"
	keyDirMode    = "dir_mode"
	keyConfig     = "config"
)

// Settings are the resolved process settings.
type Settings struct {
	LogLevel   string
	JSONLog    bool
	EnableLiGT bool
	DirMode    os.FileMode
}

// Stage returns the settings that affect stage validation.
func (s Settings) Stage() stage.Settings {
	return stage.Settings{EnableLiGT: s.EnableLiGT, DirMode: s.DirMode}
}

// Load resolves settings from MVG_* environment variables, falling back to
// an optional config file and then to defaults. configFile may be empty, in
// which case MVG_CONFIG is consulted.
func Load(configFile string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, logging.DefaultLevel)
	v.SetDefault(keyJSONLog, false)
	v.SetDefault(keyEnableLiGT, false)
	v.SetDefault(keyDirMode, workdir.FormatMode(workdir.DefaultDirPerms))

	if configFile == "" {
		configFile = v.GetString(keyConfig)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings file %s: %w", configFile, err)
		}
	}

	mode, err := workdir.ParseMode(v.GetString(keyDirMode), workdir.DefaultDirPerms)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(keyDirMode), err)
	}

	return Settings{
		LogLevel:   strings.ToLower(v.GetString(keyLogLevel)),
		JSONLog:    v.GetBool(keyJSONLog),
		EnableLiGT: v.GetBool(keyEnableLiGT),
		DirMode:    mode,
	}, nil
}
