package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port               string   `mapstructure:"port"`
	Env                string   `mapstructure:"env"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalyticsConfig holds the tunables of the analytics engine
type AnalyticsConfig struct {
	// WeekStart names the first day of the week for weekly bucketing,
	// e.g. "sunday" or "monday"
	WeekStart string         `mapstructure:"week_start"`
	Insights  InsightsConfig `mapstructure:"insights"`
}

// InsightsConfig holds the thresholds of the insight rules
type InsightsConfig struct {
	StreakRiskMinStreak  int     `mapstructure:"streak_risk_min_streak"`
	StreakRiskWindow     int     `mapstructure:"streak_risk_window"`
	StreakRiskMaxMisses  int     `mapstructure:"streak_risk_max_misses"`
	StreakRiskConfidence float64 `mapstructure:"streak_risk_confidence"`

	PeakRateThreshold float64 `mapstructure:"peak_rate_threshold"`
	PeakConfidence    float64 `mapstructure:"peak_confidence"`

	FormationMinDays    int     `mapstructure:"formation_min_days"`
	FormationMaxDays    int     `mapstructure:"formation_max_days"`
	FormationConfidence float64 `mapstructure:"formation_confidence"`

	GoalProgressThreshold float64 `mapstructure:"goal_progress_threshold"`
	GoalConsistency       float64 `mapstructure:"goal_consistency"`
	GoalConfidence        float64 `mapstructure:"goal_confidence"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("analytics.week_start", "sunday")
	v.SetDefault("analytics.insights.streak_risk_min_streak", 7)
	v.SetDefault("analytics.insights.streak_risk_window", 14)
	v.SetDefault("analytics.insights.streak_risk_max_misses", 3)
	v.SetDefault("analytics.insights.streak_risk_confidence", 0.75)
	v.SetDefault("analytics.insights.peak_rate_threshold", 80.0)
	v.SetDefault("analytics.insights.peak_confidence", 0.85)
	v.SetDefault("analytics.insights.formation_min_days", 21)
	v.SetDefault("analytics.insights.formation_max_days", 66)
	v.SetDefault("analytics.insights.formation_confidence", 0.70)
	v.SetDefault("analytics.insights.goal_progress_threshold", 0.8)
	v.SetDefault("analytics.insights.goal_consistency", 0.8)
	v.SetDefault("analytics.insights.goal_confidence", 0.80)

	// Read from environment variables
	v.SetEnvPrefix("LUMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to the conventional unprefixed port variable
	v.BindEnv("server.port", "PORT")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all configuration values are usable
func (c *Config) Validate() error {
	if _, err := ParseWeekday(c.Analytics.WeekStart); err != nil {
		return err
	}

	in := c.Analytics.Insights
	for name, confidence := range map[string]float64{
		"streak_risk_confidence": in.StreakRiskConfidence,
		"peak_confidence":        in.PeakConfidence,
		"formation_confidence":   in.FormationConfidence,
		"goal_confidence":        in.GoalConfidence,
	} {
		if confidence < 0 || confidence > 1 {
			return fmt.Errorf("analytics.insights.%s must be between 0 and 1, got %v", name, confidence)
		}
	}
	if in.FormationMinDays >= in.FormationMaxDays {
		return fmt.Errorf("analytics.insights.formation_min_days (%d) must be below formation_max_days (%d)",
			in.FormationMinDays, in.FormationMaxDays)
	}
	return nil
}

// ParseWeekday maps a lowercase weekday name to time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
}
