// Package config resolves the command's settings from flags, environment
// variables (FOOTWORK_*) and an optional config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/adammck/footwork"
	"github.com/adammck/footwork/report"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "footwork"

// ErrMissing is returned when a required setting wasn't given anywhere.
var ErrMissing = errors.New("missing required argument")

var shorthands = map[string]string{
	"lrdist": "l",
	"fbdist": "f",
	"side":   "s",
	"format": "o",
}

type Config struct {
	LRDist  float64
	FBDist  float64
	Side    footwork.Leg
	Format  report.Format
	Verbose bool
}

// Flags returns the flag set understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Float64P("lrdist", "l", 0, "The left-right distance between your feet in left-front or right-front stance")
	fs.Float64P("fbdist", "f", 0, "The front-back distance between your feet in left-front or right-front stance")
	fs.StringP("side", "s", "", "Which side of the pattern to perform {left, right}")
	fs.StringP("config", "c", "", "Path to a config file (yaml, json or toml) with the same keys as the flags")
	fs.StringP("format", "o", string(report.Text), "Output format {text, yaml}")
	fs.BoolP("verbose", "v", false, "Log each kick to stderr")
	return fs
}

// Load reads the settings from the parsed flag set, the environment, and the
// config file named by --config (if any), and validates them.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("error binding flags: %v", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from settings which have already been loaded.
func FromViper(v *viper.Viper) (*Config, error) {
	for _, key := range []string{"lrdist", "fbdist", "side"} {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, flagName(key))
		}
	}

	lr, err := cast.ToFloat64E(v.Get("lrdist"))
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", flagName("lrdist"), err)
	}

	fb, err := cast.ToFloat64E(v.Get("fbdist"))
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", flagName("fbdist"), err)
	}

	side, err := footwork.LegFrom(v.Get("side"))
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", flagName("side"), err)
	}

	format := report.Text
	if s := v.GetString("format"); s != "" {
		format, err = report.ParseFormat(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", flagName("format"), err)
		}
	}

	if err := footwork.CheckDistance("lrdist(-l)", lr); err != nil {
		return nil, err
	}

	if err := footwork.CheckDistance("fbdist(-f)", fb); err != nil {
		return nil, err
	}

	return &Config{
		LRDist:  lr,
		FBDist:  fb,
		Side:    side,
		Format:  format,
		Verbose: v.GetBool("verbose"),
	}, nil
}

func flagName(key string) string {
	return fmt.Sprintf("--%s (-%s)", key, shorthands[key])
}
