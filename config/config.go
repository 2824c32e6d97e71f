// Package config binds command-line flags and HASHIRA_* environment
// variables into a viper environment shared by the hashira commands.
package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/izouxv/hashira/utils"
)

const (
	EnvPrefix = "hashira"

	LogLevelKey = "log-level"
	PrettyKey   = "pretty"
)

// AddLogFlags registers the logging flags common to every command.
func AddLogFlags(flags *pflag.FlagSet) {
	flags.String(LogLevelKey, zerolog.InfoLevel.String(), "Log level (trace, debug, info, warn, error, disabled)")
	flags.Bool(PrettyKey, false, "Write human-readable coloured logs instead of JSON")
}

// NewViper returns a viper environment over flags. A flag left unset on the
// command line falls back to the environment variable HASHIRA_<FLAG>, with
// dashes replaced by underscores.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// Logger builds the process logger described by the logging flags in v.
func Logger(v *viper.Viper, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return zerolog.Nop(), err
	}
	return utils.SetupLogger(out, level, v.GetBool(PrettyKey)), nil
}
