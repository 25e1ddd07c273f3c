// Package config loads pennant settings from defaults, an optional config
// file, PENNANT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. PENNANT_LOG_LEVEL.
const EnvPrefix = "PENNANT"

// Config keys.
const (
	KeyAlgorithm = "algorithm"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyWorkers   = "workers"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"algorithm":  KeyAlgorithm,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"workers":    KeyWorkers,
}

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = eris.New("config: invalid value")

// Log groups the logger settings.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the resolved pennant configuration.
type Config struct {
	Algorithm string `mapstructure:"algorithm"`
	Log       Log    `mapstructure:"log"`
	Workers   int    `mapstructure:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Algorithm: flow.AlgorithmEdmondsKarp.String(),
		Log:       Log{Level: "info", Format: logging.FormatConsole},
		Workers:   1,
	}
}

// Load resolves the configuration. path may be empty, in which case no file is
// read. flags may be nil; only flags the user actually set override lower
// layers.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyAlgorithm, def.Algorithm)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)
	v.SetDefault(KeyWorkers, def.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, eris.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, eris.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := flow.ParseAlgorithm(c.Algorithm); err != nil {
		return eris.Wrapf(ErrInvalidConfig, "algorithm %q", c.Algorithm)
	}
	if _, err := logging.New(c.Log.Level, c.Log.Format, nil); err != nil {
		return eris.Wrapf(ErrInvalidConfig, "log: %v", err)
	}
	if c.Workers < 1 {
		return eris.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}

	return nil
}

// FlowAlgorithm returns the parsed solver choice.
func (c Config) FlowAlgorithm() flow.Algorithm {
	alg, err := flow.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return flow.AlgorithmEdmondsKarp
	}

	return alg
}
