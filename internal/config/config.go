package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// EnvPrefix is the prefix of latticectl environment variables
const EnvPrefix = "LATTICECTL"

// Config represents the latticectl configuration
type Config struct {
	AWS     AWSConfig     `yaml:"aws" mapstructure:"aws"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Confirm ConfirmConfig `yaml:"confirm" mapstructure:"confirm"`
}

// AWSConfig represents AWS connection settings
type AWSConfig struct {
	Region          string `yaml:"region" mapstructure:"region"`
	Profile         string `yaml:"profile" mapstructure:"profile"`
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access-key-id" mapstructure:"access-key-id"`
	SecretAccessKey string `yaml:"secret-access-key" mapstructure:"secret-access-key"`
	SessionToken    string `yaml:"session-token" mapstructure:"session-token"`
	MaxAttempts     int    `yaml:"max-attempts" mapstructure:"max-attempts"`
}

// OutputConfig represents result rendering settings
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig represents logging settings
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ConfirmConfig represents confirmation settings
type ConfirmConfig struct {
	// Threshold is the lowest impact that prompts: low, medium or high; none disables prompts
	Threshold string `yaml:"threshold" mapstructure:"threshold"`
}

// FlagKeys maps persistent flag names to configuration keys.
var FlagKeys = map[string]string{
	"region":            "aws.region",
	"profile":           "aws.profile",
	"endpoint-url":      "aws.endpoint",
	"output":            "output.format",
	"log-level":         "log.level",
	"log-format":        "log.format",
	"confirm-threshold": "confirm.threshold",
}

// AWS environment variables honoured in addition to the LATTICECTL_ ones.
// Credential variables are left to the SDK default chain.
var awsEnvVars = map[string][]string{
	"aws.region":       {"AWS_REGION", "AWS_DEFAULT_REGION"},
	"aws.profile":      {"AWS_PROFILE"},
	"aws.endpoint":     {"AWS_ENDPOINT_URL_VPC_LATTICE", "AWS_ENDPOINT_URL"},
	"aws.max-attempts": {"AWS_MAX_ATTEMPTS"},
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access-key-id", "")
	v.SetDefault("aws.secret-access-key", "")
	v.SetDefault("aws.session-token", "")
	v.SetDefault("aws.max-attempts", 0)
	v.SetDefault("output.format", "json")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("confirm.threshold", "high")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, names := range awsEnvVars {
		own := EnvPrefix + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		_ = v.BindEnv(append([]string{key, own}, names...)...)
	}

	return v
}

// Load reads the configuration file, environment and flags. An empty
// configPath searches the standard locations and tolerates a missing file.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := New()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("latticectl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.latticectl")
		v.AddConfigPath("/etc/latticectl")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if _, err := dispatch.ParseImpact(c.Confirm.Threshold); err != nil {
		return fmt.Errorf("invalid confirm threshold: %w", err)
	}

	if c.AWS.MaxAttempts < 0 {
		return fmt.Errorf("invalid max attempts: %d", c.AWS.MaxAttempts)
	}

	return nil
}

// Threshold returns the parsed confirmation threshold.
func (c *Config) Threshold() dispatch.Impact {
	impact, err := dispatch.ParseImpact(c.Confirm.Threshold)
	if err != nil {
		return dispatch.ImpactHigh
	}
	return impact
}
