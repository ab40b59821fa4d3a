package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Engine backends.
const (
	EngineSimple = "simple"
	EngineProlog = "prolog"
)

// Fact store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds application settings. The movie dataset itself is compiled in
// and is not configurable.
type Config struct {
	Engine    string `yaml:"engine" validate:"oneof=simple prolog"`
	FactStore string `yaml:"fact_store" validate:"oneof=memory sqlite"`
	SQLiteDSN string `yaml:"sqlite_dsn"`
	Format    string `yaml:"format" validate:"oneof=text json html"`
	Color     string `yaml:"color" validate:"oneof=auto always never"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Engine:    EngineSimple,
		FactStore: StoreMemory,
		Format:    "text",
		Color:     "auto",
		LogLevel:  "warn",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// envVars maps CINEREC_* variables onto fields.
var envVars = []struct {
	name  string
	field func(*Config) *string
}{
	{"CINEREC_ENGINE", func(c *Config) *string { return &c.Engine }},
	{"CINEREC_FACT_STORE", func(c *Config) *string { return &c.FactStore }},
	{"CINEREC_SQLITE_DSN", func(c *Config) *string { return &c.SQLiteDSN }},
	{"CINEREC_FORMAT", func(c *Config) *string { return &c.Format }},
	{"CINEREC_COLOR", func(c *Config) *string { return &c.Color }},
	{"CINEREC_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
}

// ApplyEnv overrides fields from non-empty CINEREC_* variables.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	for _, v := range envVars {
		if val := strings.TrimSpace(getenv(v.name)); val != "" {
			*v.field(c) = val
		}
	}
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
	return v
}()

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	fe := verrs[0]
	return fmt.Errorf("%w: %s %q must be one of [%s]", internalerr.ErrInvalidConfig, fe.Field(), fe.Value(), fe.Param())
}
