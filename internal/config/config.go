// Copyright 2025 Shadow Atlas Contributors
//
// Configuration for the Shadow Atlas registry (spec §9 "Configuration
// (enumerated)"). Every field is read from the environment with an
// explicit default, the same getEnv/getEnvInt/getEnvBool idiom the corpus
// uses for its own service configuration.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shadowatlas/registry/internal/boundary"
)

// Config holds every tunable named in spec §9.
type Config struct {
	// Merkle Commitment Engine
	Depth       int    // one of 18, 20, 22, 24
	BatchSize   int    // positive integer, default 64
	CountryCode string // ISO-3166 alpha-3, picks a default depth when Depth is 0

	// Provenance Log
	ProvenanceBaseDir string
	StagingMode       bool
	LockRetries       int
	LockRetryDelayMs  int

	// Primary-vs-Aggregator Comparator
	HeadProbeTimeoutMs  int
	HeadProbeMaxRetries int

	// Blob store
	FirestoreEnabled        bool
	FirebaseProjectID       string
	FirebaseCredentialsFile string

	// Observability
	LogLevel    string
	MetricsAddr string
}

// Load reads configuration from the environment, matching every default
// named in spec §9.
func Load() (*Config, error) {
	cfg := &Config{
		Depth:       getEnvInt("SHADOWATLAS_DEPTH", 0),
		BatchSize:   getEnvInt("SHADOWATLAS_BATCH_SIZE", 64),
		CountryCode: getEnv("SHADOWATLAS_COUNTRY_CODE", "USA"),

		ProvenanceBaseDir: getEnv("SHADOWATLAS_PROVENANCE_BASE_DIR", "./data/provenance"),
		StagingMode:       getEnvBool("SHADOWATLAS_STAGING_MODE", false),
		LockRetries:       getEnvInt("SHADOWATLAS_LOCK_RETRIES", 50),
		LockRetryDelayMs:  getEnvInt("SHADOWATLAS_LOCK_RETRY_DELAY_MS", 100),

		HeadProbeTimeoutMs:  getEnvInt("SHADOWATLAS_HEAD_PROBE_TIMEOUT_MS", 5000),
		HeadProbeMaxRetries: getEnvInt("SHADOWATLAS_HEAD_PROBE_MAX_RETRIES", 3),

		FirestoreEnabled:        getEnvBool("FIRESTORE_ENABLED", false),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsAddr: getEnv("METRICS_ADDR", "0.0.0.0:9090"),
	}
	return cfg, nil
}

// Validate checks the enumerated constraints from spec §9: depth (if
// given) must be one of {18,20,22,24}, batchSize must be positive, a
// three-letter country code, and non-negative timing knobs.
func (c *Config) Validate() error {
	var errs []string

	if c.Depth != 0 && !boundary.ValidDepth(c.Depth) {
		errs = append(errs, fmt.Sprintf("depth %d is not one of 18, 20, 22, 24", c.Depth))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, "batchSize must be a positive integer")
	}
	if len(c.CountryCode) != 3 || strings.ToUpper(c.CountryCode) != c.CountryCode {
		errs = append(errs, "countryCode must be an upper-case ISO-3166 alpha-3 code")
	}
	if c.ProvenanceBaseDir == "" {
		errs = append(errs, "provenanceBaseDir must be set")
	}
	if c.LockRetries <= 0 {
		errs = append(errs, "lockRetries must be a positive integer")
	}
	if c.LockRetryDelayMs <= 0 {
		errs = append(errs, "lockRetryDelayMs must be a positive integer")
	}
	if c.HeadProbeTimeoutMs <= 0 {
		errs = append(errs, "headProbeTimeoutMs must be a positive integer")
	}
	if c.HeadProbeMaxRetries < 0 {
		errs = append(errs, "headProbeMaxRetries must not be negative")
	}
	if c.FirestoreEnabled && c.FirebaseProjectID == "" {
		errs = append(errs, "FIREBASE_PROJECT_ID is required when FIRESTORE_ENABLED is true")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
