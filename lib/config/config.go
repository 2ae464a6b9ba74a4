package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is loaded once at startup and passed explicitly into the session
// controller.
type Config struct {
	// Prompt is a printf format receiving the 1-based number of the next
	// input.
	Prompt string
	// MultilineMarker continues the current block when a line ends with it.
	MultilineMarker string
	// CompilerCommand is split on whitespace; $EXE and $INCLUDE_DIR are
	// replaced before running. The assembled program is piped to stdin.
	CompilerCommand string
}

// Load reads the config file, falling back to defaults for missing keys.
// With an empty file argument it looks for igcc.yaml in ~/.igcc and the
// current directory; a missing file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("prompt", "igcc %v> ")
	v.SetDefault("multiline_marker", `\`)
	v.SetDefault("compiler_command", "g++ -x c++ - -I$INCLUDE_DIR -o $EXE")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config '%v'", file)
		}
	} else {
		v.SetConfigName("igcc")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".igcc"))
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config")
			}
		}
	}

	return &Config{
		Prompt:          v.GetString("prompt"),
		MultilineMarker: v.GetString("multiline_marker"),
		CompilerCommand: v.GetString("compiler_command"),
	}, nil
}
