// Package launch defines the built-in service launch configuration used when
// no delegate command is supplied at startup.
package launch

import (
	"os"
	"strconv"
)

// Built-in defaults. Binding all interfaces with reload-on-change enabled is
// a development convenience, not a production mode.
const (
	DefaultBin  = "/app/server"
	DefaultHost = "0.0.0.0"
	DefaultPort = 8000
)

// Config describes the fallback service invocation.
type Config struct {
	// Bin is the service executable.
	Bin string

	// Host is the listen interface passed to the service.
	Host string

	// Port is the listen port passed to the service.
	Port int

	// Reload enables the service's restart-on-change development mode.
	Reload bool
}

// DefaultConfig returns the built-in launch configuration: all interfaces,
// port 8000, reload enabled.
func DefaultConfig() Config {
	return Config{
		Bin:    DefaultBin,
		Host:   DefaultHost,
		Port:   DefaultPort,
		Reload: true,
	}
}

// FromEnv returns the default configuration with any overrides from
// SERVICE_BIN, SERVICE_HOST, SERVICE_PORT, and SERVICE_RELOAD applied.
// Unparseable values are ignored and the defaults kept.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SERVICE_BIN"); v != "" {
		cfg.Bin = v
	}
	if v := os.Getenv("SERVICE_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("SERVICE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("SERVICE_RELOAD"); v != "" {
		if reload, err := strconv.ParseBool(v); err == nil {
			cfg.Reload = reload
		}
	}

	return cfg
}

// Command renders the service invocation argv.
func (c Config) Command() []string {
	argv := []string{c.Bin, "--host", c.Host, "--port", strconv.Itoa(c.Port)}
	if c.Reload {
		argv = append(argv, "--reload")
	}
	return argv
}
