package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// CacheSize is the number of distinct file contents whose counts are memoized.
	// Zero disables the cache.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// ContentDir is the directory scanned for markdown files (not recursive).
	ContentDir string `koanf:"content_dir" validate:"required"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Pattern is the glob matched against file names inside ContentDir.
	Pattern string `koanf:"pattern" validate:"required,excludes=/,glob"`
}

// DEFAULT_APP_CONFIG reproduces the behaviour of the original report: the
// services content directory, every *.md file, and a quiet logger.
var DEFAULT_APP_CONFIG = AppConfig{
	CacheSize:  128,
	ContentDir: "website/content/services",
	Env:        "prod",
	LogLevel:   "warn",
	Pattern:    "*.md",
}

// validGlob reports whether the field holds a well-formed glob pattern.
func validGlob(fl validator.FieldLevel) bool {
	_, err := path.Match(fl.Field().String(), "")
	return err == nil
}

// envLoader loads environment variables with the prefix "CHARCOUNT_",
// lowercasing keys and stripping the prefix. It can be replaced in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "CHARCOUNT_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "CHARCOUNT_")), strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into k using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "glob" tag with v.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("glob", validGlob)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

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
