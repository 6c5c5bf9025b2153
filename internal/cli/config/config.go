package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// Config represents the apihelp configuration
type Config struct {
	Environment string       `mapstructure:"environment"`
	Help        HelpConfig   `mapstructure:"help"`
	Server      ServerConfig `mapstructure:"server"`
}

// HelpConfig controls registration failure reporting and output
type HelpConfig struct {
	MaxTraceFrames int  `mapstructure:"max_trace_frames"`
	Color          bool `mapstructure:"color"`
}

// ServerConfig represents the help console server configuration
type ServerConfig struct {
	Port   int    `mapstructure:"port"`
	Host   string `mapstructure:"host"`
	Prefix string `mapstructure:"prefix"`
}

// Address returns the host:port the server listens on
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load loads the configuration from apihelp.yml or apihelp.yaml in the
// current directory
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads the configuration from apihelp.yml or apihelp.yaml in dir.
// Every key can be overridden by an APIHELP_ environment variable, for
// example APIHELP_ENVIRONMENT or APIHELP_HELP_MAX_TRACE_FRAMES.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("environment", string(apihelp.Development))
	v.SetDefault("help.max_trace_frames", apihelp.DefaultMaxTraceFrames)
	v.SetDefault("help.color", true)
	v.SetDefault("server.port", 4010)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.prefix", "/_help")

	// Set config name and paths
	v.SetConfigName("apihelp")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Enable environment variable support
	v.SetEnvPrefix("APIHELP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Env returns the parsed environment. Load has already validated it.
func (c *Config) Env() apihelp.Environment {
	env, err := apihelp.ParseEnvironment(c.Environment)
	if err != nil {
		return apihelp.Development
	}
	return env
}

// HelpOptions returns the apihelp options this configuration implies
func (c *Config) HelpOptions() []apihelp.Option {
	return []apihelp.Option{
		apihelp.WithEnvironment(c.Env()),
		apihelp.WithMaxTraceFrames(c.Help.MaxTraceFrames),
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := apihelp.ParseEnvironment(cfg.Environment); err != nil {
		return fmt.Errorf("environment must be development, test or production, got: %s", cfg.Environment)
	}
	if cfg.Help.MaxTraceFrames <= 0 {
		return fmt.Errorf("help.max_trace_frames must be positive, got: %d", cfg.Help.MaxTraceFrames)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", cfg.Server.Port)
	}
	if cfg.Server.Prefix != "" {
		if !strings.HasPrefix(cfg.Server.Prefix, "/") {
			return fmt.Errorf("server.prefix must start with '/', got: %s", cfg.Server.Prefix)
		}
		if strings.HasSuffix(cfg.Server.Prefix, "/") {
			return fmt.Errorf("server.prefix must not end with '/', got: %s", cfg.Server.Prefix)
		}
	}
	return nil
}
