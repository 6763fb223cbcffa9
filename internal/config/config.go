package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/hubloom-cli/internal/render"
)

// Global configuration structure.
type Global struct {
	HubsDir    string `mapstructure:"hubs_dir" yaml:"hubs_dir"`
	DefaultHub string `mapstructure:"default_hub" yaml:"default_hub"`

	// Importer defaults; hubs may override them in hub.json
	ExcerptMaxLength int    `mapstructure:"excerpt_max_length" yaml:"excerpt_max_length"`
	WordsPerMinute   int    `mapstructure:"words_per_minute" yaml:"words_per_minute"`
	VocabularyFile   string `mapstructure:"vocabulary_file" yaml:"vocabulary_file"`
	MaxFileBytes     int64  `mapstructure:"max_file_bytes" yaml:"max_file_bytes"`

	// HTML rendering for show --html and export --format html
	RenderExtensions []string `mapstructure:"render_extensions" yaml:"render_extensions"`
	HardWraps        bool     `mapstructure:"hard_wraps" yaml:"hard_wraps"`
	SafeMode         bool     `mapstructure:"safe_mode" yaml:"safe_mode"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists the settable configuration keys.
var Keys = []string{
	"hubs_dir", "default_hub", "excerpt_max_length", "words_per_minute",
	"vocabulary_file", "max_file_bytes", "render_extensions", "hard_wraps",
	"safe_mode", "log_level", "log_format",
}

// Validate checks value ranges and enumerations.
func (c *Global) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ExcerptMaxLength, validation.Required, validation.Min(10), validation.Max(10000)),
		validation.Field(&c.WordsPerMinute, validation.Required, validation.Min(1), validation.Max(2000)),
		validation.Field(&c.MaxFileBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.RenderExtensions, validation.Each(validation.By(knownExtension))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
	)
}

func knownExtension(value interface{}) error {
	name, _ := value.(string)
	if !slices.Contains(render.ExtensionNames(), strings.ToLower(strings.TrimSpace(name))) {
		return fmt.Errorf("unknown render extension %q (valid: %s)", name, strings.Join(render.ExtensionNames(), ", "))
	}
	return nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".hubloom"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.hubloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("HUBLOOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("hubs_dir", "")
	v.SetDefault("default_hub", "")
	v.SetDefault("excerpt_max_length", 200)
	v.SetDefault("words_per_minute", 200)
	v.SetDefault("vocabulary_file", "")
	v.SetDefault("max_file_bytes", 5<<20)
	v.SetDefault("render_extensions", []string{})
	v.SetDefault("hard_wraps", false)
	v.SetDefault("safe_mode", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	dir, err := defaultDir()
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine; a broken one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve hubs_dir default: ~/.hubloom/hubs
	if c.HubsDir == "" {
		c.HubsDir = filepath.Join(dir, "hubs")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}
