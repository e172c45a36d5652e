package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"evalreport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Env      string `validate:"required"`
	LogLevel string `validate:"oneof=ERROR WARN INFO DEBUG TRACE"`
	Server   ServerConfig
	Export   ExportConfig
	Schema   SchemaConfig
	Coercion CoercionConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string `validate:"required,numeric"`
	MaxUploadMB int    `validate:"gt=0,lte=1024"`
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	SheetName          string `validate:"required,max=31"`
	FileName           string `validate:"required"`
	IncludeProjectName bool
}

// SchemaConfig selects the evaluation schema
type SchemaConfig struct {
	File   string
	Preset string `validate:"oneof=en pt"`
}

// CoercionConfig holds numeric parsing settings
type CoercionConfig struct {
	DecimalComma bool
}

// MaxUploadBytes is the upload cap in bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Env:      getEnvOrDefault("APP_ENV", "development"),
		LogLevel: strings.ToUpper(strings.TrimSpace(getEnvOrDefault("LOG_LEVEL", "INFO"))),
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			MaxUploadMB: getEnvIntOrDefault("MAX_UPLOAD_MB", 32),
		},
		Export: ExportConfig{
			SheetName:          getEnvOrDefault("EXPORT_SHEET", defaultSheetName),
			FileName:           getEnvOrDefault("EXPORT_FILENAME", defaultFileName),
			IncludeProjectName: getEnvBoolOrDefault("INCLUDE_PROJECT_NAME", false),
		},
		Schema: SchemaConfig{
			File:   getEnvOrDefault("SCHEMA_FILE", ""),
			Preset: getEnvOrDefault("SCHEMA_PRESET", "en"),
		},
		Coercion: CoercionConfig{
			DecimalComma: getEnvBoolOrDefault("DECIMAL_COMMA", false),
		},
	}

	config.ApplyPreset(config.Schema.Preset)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Export names used when the environment does not set them
const (
	defaultSheetName   = "Results"
	defaultFileName    = "Evaluation_Results.xlsx"
	portugueseSheet    = "Resultado"
	portugueseFileName = "Resultados_Avaliacao.xlsx"
)

// ApplyPreset selects a schema preset and the matching export sheet and file
// names. Names set in the environment always win.
func (c *Config) ApplyPreset(preset string) {
	c.Schema.Preset = preset

	sheet, file := defaultSheetName, defaultFileName
	if preset == "pt" {
		sheet, file = portugueseSheet, portugueseFileName
	}
	if os.Getenv("EXPORT_SHEET") == "" {
		c.Export.SheetName = sheet
	}
	if os.Getenv("EXPORT_FILENAME") == "" {
		c.Export.FileName = file
	}
}

var validate = validator.New()

func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return errors.ConfigInvalid(describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	first := verrs[0]
	return fmt.Sprintf("%s failed %q (value %v)", first.Namespace(), first.Tag(), first.Value())
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
