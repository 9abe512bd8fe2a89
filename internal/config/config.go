// Package config defines the application configuration and the functions
// for loading it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/salary-calculator/internal/salary"
	"github.com/iwvelando/salary-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for salary-calculator.
type Configuration struct {
	Defaults salary.Input  `yaml:"defaults,omitempty" mapstructure:"defaults"`
	Logging  LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{Defaults: salary.DefaultInput()}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering every key lets environment variables override values
	// that are absent from the file.
	defaults := salary.DefaultInput()
	for _, f := range salary.Fields() {
		value, _ := defaults.Value(f.Path)
		v.SetDefault("defaults."+f.Path, value)
	}
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults, still subject to
// environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	configuration := Default()
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	tree := salary.Validate(c.Defaults)
	messages := tree.Messages()

	warnings := make([]string, 0, len(messages))
	for _, msg := range messages {
		warnings = append(warnings, "defaults: "+msg)
	}
	return warnings
}
