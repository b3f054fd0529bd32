package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/nest"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CSVJSON_METADATA_NAME.
const EnvPrefix = "CSVJSON"

// Config holds the settings of one conversion run.
type Config struct {
	Input    string       `mapstructure:"input"`
	Output   string       `mapstructure:"output"`
	SQLite   string       `mapstructure:"sqlite"`
	Indent   int          `mapstructure:"indent"`
	MaxIndex int          `mapstructure:"max_index"`
	Verbose  bool         `mapstructure:"verbose"`
	Metadata api.Metadata `mapstructure:"metadata"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":        "input",
	"output":       "output",
	"sqlite":       "sqlite",
	"indent":       "indent",
	"max-index":    "max_index",
	"verbose":      "verbose",
	"meta-name":    "metadata.name",
	"meta-version": "metadata.version",
}

func setDefaults(v *viper.Viper) {
	meta := api.DefaultMetadata()
	v.SetDefault("input", "export.csv")
	v.SetDefault("output", "export.json")
	v.SetDefault("sqlite", "")
	v.SetDefault("indent", 2)
	v.SetDefault("max_index", nest.DefaultMaxIndex)
	v.SetDefault("verbose", false)
	v.SetDefault("metadata.name", meta.Name)
	v.SetDefault("metadata.version", meta.Version)
}

// Load resolves the configuration. Precedence, highest first: flags that
// were set, CSVJSON_* environment variables, the config file at path (if
// path is not empty), defaults.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot drive a conversion.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent must be >= 0, got %d", c.Indent))
	}
	if c.MaxIndex <= 0 {
		errs = append(errs, fmt.Errorf("max_index must be > 0, got %d", c.MaxIndex))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
