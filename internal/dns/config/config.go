package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Endpoint is the base URL of the DNS control-plane API.
	Endpoint string `koanf:"endpoint" validate:"required,api_endpoint"`

	// Token is a bearer token sent with every API request. Leave empty for
	// endpoints that do not authenticate.
	Token string `koanf:"token"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// JournalPath is the bolt database file recording applied imports.
	JournalPath string `koanf:"journal_path" validate:"required"`

	// CacheSize bounds how many zone snapshots imports keep in memory.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// DefaultTTL is applied to zone-file records that carry no ttl of
	// their own.
	DefaultTTL uint32 `koanf:"default_ttl" validate:"required,gte=1"`

	// WaitForDone makes imports block until the service marks each change
	// applied.
	WaitForDone bool `koanf:"wait_for_done"`
}

// DEFAULT_APP_CONFIG defines the default application configuration settings
// for the control-plane client. It includes default values for the runtime
// environment, log level, journal location, snapshot cache size, and record
// TTL.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:         "prod",
	LogLevel:    "info",
	JournalPath: "/var/lib/rr-dnsctl/journal.db",
	CacheSize:   64,
	DefaultTTL:  3600,
	WaitForDone: false,
}

// validEndpoint validates whether the provided field value is an absolute
// http or https URL with a host component.
func validEndpoint(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// envLoader is a function that loads environment variables with the prefix
// "DNSCTL_". It transforms the keys to lowercase and removes the prefix,
// and can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSCTL_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DNSCTL_"))
			value = strings.TrimSpace(value)
			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider and the DEFAULT_APP_CONFIG struct. It
// returns an error if loading fails.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers a custom validation function "api_endpoint"
// with the provided validator. Returns an error if registration fails.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("api_endpoint", validEndpoint)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using structs provider.
	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	// Load environment variables with prefix "DNSCTL_".
	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	// Unmarshal the loaded configuration into AppConfig struct.
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Validate the configuration.
	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
