// Package config provides YAML-based configuration loading and validation
// for pathlab.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/pathlab/internal/search"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full pathlab configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig controls random maze generation.
type GridConfig struct {
	Rows            int     `yaml:"rows" validate:"gte=3,lte=500"`
	Cols            int     `yaml:"cols" validate:"gte=3,lte=500"`
	WallProbability float64 `yaml:"wall_probability" validate:"gte=0,lte=1"`
	Seed            uint64  `yaml:"seed"` // 0 = time-based
}

// SearchConfig selects which strategies are compared.
type SearchConfig struct {
	Strategies []string `yaml:"strategies" validate:"required,min=1,dive,strategy"`
	Parallel   bool     `yaml:"parallel"`
}

// StorageConfig controls run history persistence.
type StorageConfig struct {
	Path     string `yaml:"path" validate:"required_unless=Disabled true"`
	Keep     int    `yaml:"keep" validate:"gte=0"`
	Disabled bool   `yaml:"disabled"`
}

// ViewerConfig controls the interactive viewer.
type ViewerConfig struct {
	TickRate int    `yaml:"tick_rate" validate:"gte=1,lte=240"`
	Theme    string `yaml:"theme" validate:"oneof=default mono plain"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"gte=1,lte=65535"`
	HostKeyPath string `yaml:"host_key_path" validate:"required"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strategy", validateStrategy)
}

func validateStrategy(fl validator.FieldLevel) bool {
	_, err := search.ParseStrategy(fl.Field().String())
	return err == nil
}

// Validate checks every field. The error wraps ErrInvalid and lists each
// failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "strategy":
		return fmt.Sprintf("%s: unknown strategy %q", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: %v is not one of [%s]", field, fe.Value(), fe.Param())
	case "required", "required_unless":
		return fmt.Sprintf("%s: required", field)
	default:
		return fmt.Sprintf("%s: %v fails %s=%s", field, fe.Value(), fe.Tag(), fe.Param())
	}
}

// Strategies returns the configured strategies in order.
// Call Validate first; unparsable entries are skipped.
func (c *Config) Strategies() []search.Strategy {
	out := make([]search.Strategy, 0, len(c.Search.Strategies))
	for _, name := range c.Search.Strategies {
		if s, err := search.ParseStrategy(name); err == nil {
			out = append(out, s)
		}
	}
	return out
}
