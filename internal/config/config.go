package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Razorpay RazorpayConfig `koanf:"razorpay"`
	Logger   LoggerConfig   `koanf:"logger"`
	CORS     CORSConfig     `koanf:"cors"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"min=0"`
}

// RazorpayConfig holds the gateway credentials. A zero Timeout leaves the
// HTTP client without a deadline.
type RazorpayConfig struct {
	KeyID   string        `koanf:"key_id" validate:"required"`
	Secret  string        `koanf:"secret" validate:"required"`
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"required,min=1"`
}

var defaults = map[string]interface{}{
	"server.port":          "5000",
	"server.read_timeout":  15 * time.Second,
	"server.write_timeout": time.Duration(0),
	"server.idle_timeout":  60 * time.Second,
	"razorpay.base_url":    "https://api.razorpay.com",
	"razorpay.timeout":     time.Duration(0),
	"logger.level":         "info",
	"logger.format":        "json",
	"cors.allowed_origins": []string{"*"},
}

// LoadConfig reads defaults, then INSTPRINT_* variables, then the RAZORPAY_*
// credentials and PORT, later sources winning.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err := k.Load(env.Provider("INSTPRINT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "INSTPRINT_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading INSTPRINT_ environment: %w", err)
	}

	err = k.Load(env.Provider("RAZORPAY_", ".", func(s string) string {
		return "razorpay." + strings.ToLower(strings.TrimPrefix(s, "RAZORPAY_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading RAZORPAY_ environment: %w", err)
	}

	err = k.Load(env.Provider("PORT", ".", func(s string) string {
		if s != "PORT" {
			return ""
		}
		return "server.port"
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading PORT: %w", err)
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return mainConfig, nil
}
