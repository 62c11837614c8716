package core

import (
	"fmt"
	"regexp"

	"github.com/hferraz/patternbook/pkg/models"
	"github.com/spf13/viper"
)

// validPrefixPattern matches uppercase alphanumeric prefixes between 1 and 10 characters.
var validPrefixPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

// ConfigurationManager defines the interface for loading and validating
// the notebook configuration from the .pbconfig file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(config *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .pbconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads the
// configuration file relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultGlobalConfig returns a GlobalConfig populated with sensible defaults.
func defaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		DefaultCategory: "",
		QuizLength:      3,
		NoteIDPrefix:    "N",
		NoteIDPadWidth:  5,
		Review: models.ReviewConfig{
			IntervalDays:         7,
			MasteredIntervalDays: 30,
		},
	}
}

// LoadGlobalConfig reads the .pbconfig file from the base path using Viper.
// If the file does not exist, sensible defaults are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".pbconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("defaults.category", cfg.DefaultCategory)
	v.SetDefault("quiz.length", cfg.QuizLength)
	v.SetDefault("note_id.prefix", cfg.NoteIDPrefix)
	v.SetDefault("note_id.pad_width", cfg.NoteIDPadWidth)
	v.SetDefault("review.interval_days", cfg.Review.IntervalDays)
	v.SetDefault("review.mastered_interval_days", cfg.Review.MasteredIntervalDays)
	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.webhook_url", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found: return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .pbconfig: %w", err)
	}

	// Map nested YAML keys to flat GlobalConfig fields.
	cfg.DefaultCategory = v.GetString("defaults.category")
	cfg.QuizLength = v.GetInt("quiz.length")
	cfg.NoteIDPrefix = v.GetString("note_id.prefix")
	cfg.Review.IntervalDays = v.GetInt("review.interval_days")
	cfg.Review.MasteredIntervalDays = v.GetInt("review.mastered_interval_days")
	cfg.Notifications.Enabled = v.GetBool("notifications.enabled")
	cfg.Notifications.WebhookURL = v.GetString("notifications.webhook_url")

	// Use IsSet to distinguish "not set" (use default 5) from "explicitly set to 0".
	if v.IsSet("note_id.pad_width") {
		cfg.NoteIDPadWidth = v.GetInt("note_id.pad_width")
	}

	if err := cm.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateConfig checks the loaded configuration for values that would
// break the notebook at runtime.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg.NoteIDPrefix != "" && !validPrefixPattern.MatchString(cfg.NoteIDPrefix) {
		return fmt.Errorf("invalid note_id.prefix %q: must be 1-10 uppercase alphanumeric characters", cfg.NoteIDPrefix)
	}
	if cfg.QuizLength < 0 {
		return fmt.Errorf("invalid quiz.length %d: must not be negative", cfg.QuizLength)
	}
	if cfg.Review.IntervalDays < 0 || cfg.Review.MasteredIntervalDays < 0 {
		return fmt.Errorf("invalid review intervals: must not be negative")
	}
	switch cfg.DefaultCategory {
	case "", string(models.CategoryBehavioral), string(models.CategoryStructural), string(models.CategoryCreational):
	default:
		return fmt.Errorf("invalid defaults.category %q: must be behavioral, structural, or creational", cfg.DefaultCategory)
	}
	return nil
}
