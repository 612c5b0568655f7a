package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "siege_roster_config"

// Defaults applied when the config file leaves a field unset
const (
	DefaultDailyTeamSize   = 20
	DefaultFixedPoolSize   = 10
	DefaultEventLengthDays = 14
)

// Config represents the application configuration
type Config struct {
	// DatabaseSheetID is the spreadsheet holding the member table
	DatabaseSheetID string `yaml:"databaseSheetID" validate:"required"`

	// DailyTeamSize is the target team size for each event day
	DailyTeamSize int `yaml:"dailyTeamSize,omitempty" validate:"omitempty,min=1"`

	// FixedPoolSize caps the permanent daily core
	FixedPoolSize int `yaml:"fixedPoolSize,omitempty" validate:"omitempty,min=0"`

	// DefaultMode is the tie-break policy used when the caller gives none
	DefaultMode string `yaml:"defaultMode,omitempty" validate:"omitempty,oneof=power equal"`

	// PreferConditional prioritizes specific-date answers in power mode
	PreferConditional bool `yaml:"preferConditional,omitempty"`

	// EventLengthDays is the default period length when no end date is given
	EventLengthDays int `yaml:"eventLengthDays,omitempty" validate:"omitempty,min=1"`

	// ExclusionRule is an optional RRULE describing days to skip when
	// expanding the event period, e.g. "FREQ=WEEKLY;BYDAY=SU" for the
	// no-Sunday variant
	ExclusionRule string `yaml:"exclusionRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from siege_roster_config.yaml,
// looking in the current directory first, then the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment, e.g. env="test"
// resolves siege_roster_config.test.yaml
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the exclusion
// rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.ExclusionRule != "" {
		if _, err := rrule.StrToRRule(cfg.ExclusionRule); err != nil {
			return fmt.Errorf("invalid exclusionRule: %w", err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.DailyTeamSize == 0 {
		cfg.DailyTeamSize = DefaultDailyTeamSize
	}
	if cfg.FixedPoolSize == 0 {
		cfg.FixedPoolSize = DefaultFixedPoolSize
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = "power"
	}
	if cfg.EventLengthDays == 0 {
		cfg.EventLengthDays = DefaultEventLengthDays
	}
}

// findConfigFile searches the current directory and the home directory for
// the (optionally env-suffixed) config file
func findConfigFile(env string) (string, error) {
	fileName := configFileName + ".yaml"
	if env != "" {
		fileName = fmt.Sprintf("%s.%s.yaml", configFileName, env)
	}

	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", fileName)
}
