package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Thresholds are the tunable cut-off values of the classification. They
// were re-tuned several times by the CHW product owners, so every one of
// them is configuration with a named default, never a literal in the
// decision logic.
type Thresholds struct {
	// SlopeHardRock separates flat from sloping terrain in the geology
	// type check and the coral special cases (percent grade).
	SlopeHardRock float64
	// SlopeBarrierDelta is the slope ceiling for barriers, deltas and
	// river mouths (percent grade).
	SlopeBarrierDelta float64
	// SlopeVegetation is the 200 m-inland slope above which terrain is
	// presumed unvegetated regardless of land cover.
	SlopeVegetation float64
	// CoralIslandMedianElev is the median island elevation (m) below
	// which a coral-fringed small island classifies as Coral island.
	CoralIslandMedianElev float64
	// SedimentChangeRate is the change-rate floor for a Surplus verdict.
	SedimentChangeRate float64
	// ProfileStepM is the elevation sampling step along the transect.
	ProfileStepM float64
	// VegetationWindowM restricts the slope window for the vegetation
	// check to the first part of the transect.
	VegetationWindowM float64
}

// Config holds the application configuration.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Webhook delivery
	WebhookURL     string
	WebhookSecret  string
	WebhookTimeout time.Duration

	// GeoServer OWS endpoint serving the DEM and land-cover coverages.
	OWSURL       string
	OWSUser      string
	OWSPassword  string
	DEMLayer     string
	DEMTestLayer string
	LanduseLayer string

	// TmpDir is the parent for per-request working directories.
	TmpDir string

	// StatsTimeWindowMinutes bounds the run statistics query.
	StatsTimeWindowMinutes int

	// API keys for authentication
	APIKeys []string

	Thresholds Thresholds
}

// LoadConfig loads configuration from the environment and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		OWSURL:                 os.Getenv("OWS_URL"),
		OWSUser:                os.Getenv("OWS_USER"),
		OWSPassword:            os.Getenv("OWS_PASSWORD"),
		DEMLayer:               getEnv("DEM_LAYER", "chw:fabdem"),
		DEMTestLayer:           getEnv("DEM_TEST_LAYER", "chw:fabdem_test"),
		LanduseLayer:           getEnv("LANDUSE_LAYER", "chw:globcover"),
		TmpDir:                 getEnv("TMP_DIR", os.TempDir()),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		Thresholds: Thresholds{
			SlopeHardRock:         getEnvAsFloat("SLOPE_CUTOFF_HARD_ROCK", 2.3),
			SlopeBarrierDelta:     getEnvAsFloat("SLOPE_CUTOFF_BARRIER_DELTA", 3.5),
			SlopeVegetation:       getEnvAsFloat("SLOPE_CUTOFF_VEGETATION", 59),
			CoralIslandMedianElev: getEnvAsFloat("CORAL_ISLAND_MEDIAN_ELEVATION", 14),
			SedimentChangeRate:    getEnvAsFloat("SEDIMENT_CHANGE_RATE", 0.5),
			ProfileStepM:          getEnvAsFloat("PROFILE_STEP_M", 30),
			VegetationWindowM:     getEnvAsFloat("VEGETATION_WINDOW_M", 200),
		},
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.OWSURL == "" {
		return nil, fmt.Errorf("OWS_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the environment value or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment value as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns the environment value as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment value as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
