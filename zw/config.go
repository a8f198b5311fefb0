package zw

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDebounce  = 2 * time.Second
	DefaultTool      = "zig"
	DefaultExtension = "zig"
	DefaultExercises = "exercises"
	DefaultLogLevel  = "info"
)

type Config struct {
	Debounce  time.Duration `yaml:"debounce"`
	Tool      string        `yaml:"tool"`
	Extension string        `yaml:"extension"`
	Exercises string        `yaml:"exercises"`
	LogLevel  string        `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Debounce:  DefaultDebounce,
		Tool:      DefaultTool,
		Extension: DefaultExtension,
		Exercises: DefaultExercises,
		LogLevel:  DefaultLogLevel,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	cfg.fill()
	return cfg, nil
}

func (c *Config) fill() {
	d := DefaultConfig()
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	if c.Tool == "" {
		c.Tool = d.Tool
	}
	if c.Extension == "" {
		c.Extension = d.Extension
	}
	if c.Exercises == "" {
		c.Exercises = d.Exercises
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}
