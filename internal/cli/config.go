package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/govalues/bigdecimal"
)

const defaultLogLevel = "info"

// Config holds the settings shared by all commands.
// A configuration file uses the TOML format:
//
//	scale = 10
//	log_level = "debug"
type Config struct {
	Scale    int    `toml:"scale"`
	LogLevel string `toml:"log_level"`
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() Config {
	return Config{
		Scale:    bigdecimal.DefaultScale,
		LogLevel: defaultLogLevel,
	}
}

// LoadConfig reads the file at path on top of the default configuration.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := NewDefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file %s", path)
	}
	md, err := toml.Decode(string(buf), &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decoding config file %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, errors.Errorf("config file %s has unknown keys %v", path, keys)
	}
	return cfg, nil
}

// Validate checks that the scale is usable for division and that the
// log level is known to zap.
func (c Config) Validate() error {
	if c.Scale < 0 {
		return errors.Wrapf(bigdecimal.ErrScaleRange, "scale %v", c.Scale)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return nil
}
