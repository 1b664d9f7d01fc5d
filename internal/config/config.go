package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const MaxGenerationDelay = 5 * time.Second

var (
	LogLevels = []any{"debug", "info", "warn", "error"}
	Themes    = []any{"dark", "light"}
)

type Config struct {
	DataDir         string        `yaml:"data_dir" mapstructure:"data_dir"`
	GenerationDelay time.Duration `yaml:"generation_delay" mapstructure:"generation_delay"`
	ImageVersion    string        `yaml:"image_version" mapstructure:"image_version"`
	ImageProfile    bool          `yaml:"image_profile" mapstructure:"image_profile"`
	Theme           string        `yaml:"theme" mapstructure:"theme"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`
	MaxFiles int    `yaml:"max_files" mapstructure:"max_files"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:         defaultDataDir(),
		GenerationDelay: time.Second,
		ImageVersion:    "7",
		ImageProfile:    true,
		Theme:           "dark",
		Log: LogConfig{
			Level:    "info",
			MaxFiles: 5,
		},
	}
}

func defaultDataDir() string {
	dir, err := ConfigDir()
	if err != nil {
		return ".promptcraft"
	}
	return filepath.Join(dir, "library")
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptcraft"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Validate checks value ranges. A zero generation delay is allowed.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.GenerationDelay,
			validation.Min(time.Duration(0)),
			validation.Max(MaxGenerationDelay),
		),
		validation.Field(&c.ImageVersion, validation.Required, validation.In("6", "7")),
		validation.Field(&c.Theme, validation.Required, validation.In(Themes...)),
		validation.Field(&c.Log),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In(LogLevels...)),
		validation.Field(&l.MaxFiles, validation.Required, validation.Min(1)),
	)
}

// Save writes the config to the default config path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
