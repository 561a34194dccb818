// Package config loads client configuration from environment variables
// using koanf, with struct defaults and validator-based checking.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Servers is the ordered list of DNS servers in ip:port format.
	// They are tried one at a time, in order.
	Servers []string `koanf:"servers" validate:"required,dive,ip_port"`

	// Timeout is the per-attempt query timeout in milliseconds. Each
	// server gets one attempt of at most this long.
	Timeout uint `koanf:"timeout" validate:"required,gte=1"`
}

// DEFAULT_APP_CONFIG defines the default client configuration: public
// resolvers in fallback order and a two second per-attempt timeout.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:      "prod",
	LogLevel: "info",
	Servers:  []string{"1.1.1.1:53", "8.8.8.8:53"},
	Timeout:  2000,
}

// validIPPort validates whether the provided field value is a valid IP address and port combination.
// It expects the value to be in the format "IP:Port".
func validIPPort(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	ip, port, err := net.SplitHostPort(addr)
	if err != nil || ip == "" || port == "" {
		return false
	}
	if net.ParseIP(ip) == nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0 && portNum < 65536
}

// envLoader loads environment variables with the prefix "SDNS_",
// lowercasing keys and splitting space/comma separated values.
// Declared as a var so tests can swap it out.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.ProviderWithValue("SDNS_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "SDNS_"))
		value = strings.TrimSpace(value)

		if value == "" {
			return key, value
		}

		if strings.Contains(value, " ") || strings.Contains(value, ",") {
			parts := strings.FieldsFunc(value, func(r rune) bool {
				return r == ' ' || r == ','
			})
			return key, parts
		}

		return key, value
	}), nil)
}

// defaultLoader loads default configuration values into the provided
// Koanf instance using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "ip_port" rule used by the
// Servers field.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("ip_port", validIPPort)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
