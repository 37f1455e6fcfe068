package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/thaidoc/internal/model"
)

// FileName is the project configuration file written by `thaidoc init`.
const FileName = "thaidoc.yaml"

// Config represents the top-level thaidoc.yaml configuration.
// Every field can be overridden with a THAIDOC_* environment variable.
type Config struct {
	Seller model.Party `yaml:"seller" env-prefix:"THAIDOC_SELLER_"`
	Tax    TaxConfig   `yaml:"tax" env-prefix:"THAIDOC_TAX_"`
	PDF    PDFConfig   `yaml:"pdf" env-prefix:"THAIDOC_PDF_"`
	Log    LogConfig   `yaml:"log" env-prefix:"THAIDOC_LOG_"`
}

// TaxConfig is applied to documents that do not carry their own tax settings.
type TaxConfig struct {
	Rate float64       `yaml:"rate" env:"RATE"`
	Type model.TaxType `yaml:"type" env:"TYPE" env-default:"vat"`
}

// PDFConfig controls the renderer.
type PDFConfig struct {
	FontPath   string `yaml:"font_path" env:"FONT_PATH"` // TTF with Thai glyphs; empty = built-in font
	FontFamily string `yaml:"font_family" env:"FONT_FAMILY" env-default:"thai"`
}

// LogConfig sets the zap level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL" env-default:"info"`
}

// Load reads a thaidoc.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default plus environment
// overrides when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default("")
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project:
// 7% VAT and the built-in PDF font.
func Default(sellerName string) *Config {
	return &Config{
		Seller: model.Party{
			Name: sellerName,
		},
		Tax: TaxConfig{
			Rate: 0.07,
			Type: model.TaxVAT,
		},
		PDF: PDFConfig{
			FontFamily: "thai",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
