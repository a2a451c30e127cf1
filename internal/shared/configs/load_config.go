package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"log-analyzer/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOG_ANALYZER"

var defaults = map[string]any{
	"report_size":   1000,
	"report_dir":    "./reports",
	"log_dir":       "./log",
	"output_log":    "",
	"template_path": "",

	"log.level": "info",

	"source.product_marker": "nginx",
	"source.plain_marker":   "ui.log",
	"source.compressed_ext": ".gz",
	"source.date_layout":    "20060102",

	"metrics.textfile_path": "",

	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
}

// LoadConfig merges defaults, the config file at configPath and LOG_ANALYZER_* environment
// variables, then validates the result. A missing config file is not an error: defaults apply.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if err := readConfigFile(v, configPath); err != nil {
			return nil, err
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, configPath string) error {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(configPath)
	if filepath.Ext(configPath) == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "startswith":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
