package store

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keys, also used as flag names by the commands package.
const (
	KeySource     = "source"
	KeyEntries    = "entries"
	KeyCategories = "categories"
	KeyState      = "state"
	KeyLogLevel   = "log-level"
	KeyLogFile    = "log-file"
)

// Config locates the persisted selection store.
type Config interface {
	StatePath() string
}

// Settings is the resolved configuration.
type Settings struct {
	// Source is the base location that relative dataset paths are resolved
	// against: a directory or an http(s) URL.
	Source     string `json:"source"`
	Entries    string `json:"entries"`
	Categories string `json:"categories"`
	State      string `json:"state"`
	LogLevel   string `json:"logLevel"`
	LogFile    string `json:"logFile"`
}

// StatePath is the directory holding the persisted selection.
func (s *Settings) StatePath() string {
	return s.State
}

// LoadConfig reads .pokedex.yaml from $POKEDEX_CONFIG_PATH or the working
// directory and overlays POKEDEX_* environment variables. A missing config
// file is fine.
func LoadConfig() (*Settings, error) {
	viper.SetDefault(KeySource, ".")
	viper.SetDefault(KeyEntries, "pokemon-api.json")
	viper.SetDefault(KeyCategories, "pokemon-types-api.json")
	viper.SetDefault(KeyState, "~/.pokedex")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFile, "")
	viper.SetConfigName(".pokedex") // .yaml is implicit
	viper.SetEnvPrefix("POKEDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("POKEDEX_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	state, err := homedir.Expand(viper.GetString(KeyState))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(viper.GetString(KeyLogFile))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Source:     viper.GetString(KeySource),
		Entries:    viper.GetString(KeyEntries),
		Categories: viper.GetString(KeyCategories),
		State:      state,
		LogLevel:   viper.GetString(KeyLogLevel),
		LogFile:    logFile,
	}, nil
}
