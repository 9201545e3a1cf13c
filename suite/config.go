package suite

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a configuration value outside its allowed range.
var ErrBadConfig = errors.New("suite: invalid config")

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

// Config controls a Runner.
type Config struct {
	// Workers bounds how many jobs solve at once. Must be ≥ 1.
	Workers int `yaml:"workers"`

	// Log selects the logger built by Config.Logger.
	Log LogConfig `yaml:"log"`
}

// LogConfig selects zap's level ("debug", "info", "warn", "error") and
// encoding ("json" or "console").
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// DefaultConfig returns DefaultWorkers workers and info-level JSON logs.
func DefaultConfig() Config {
	return Config{
		Workers: DefaultWorkers,
		Log:     LogConfig{Level: "info", Encoding: "json"},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig, so omitted keys keep
// their defaults. Unknown keys are rejected. Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("suite: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d, want ≥ 1", ErrBadConfig, c.Workers)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: log encoding %q", ErrBadConfig, c.Log.Encoding)
	}
	if c.Log.Level != "" {
		if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log level %q", ErrBadConfig, c.Log.Level)
		}
	}

	return nil
}

// Logger builds a production zap logger with the configured level and
// encoding. Empty fields fall back to info and json.
func (c Config) Logger() (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Level != "" {
		lvl, err := zap.ParseAtomicLevel(c.Log.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = lvl
	}
	if c.Log.Encoding == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}
