package common

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Pipeline PipelineConfig
	Audit    AuditConfig
	Export   ExportConfig
}

// PipelineConfig holds extraction/normalization tunables
type PipelineConfig struct {
	Workers         int
	FuzzyThreshold  float64 // comuna fuzzy-match acceptance, (0,1]
	DocumentTimeout time.Duration
}

// AuditConfig holds trace/record persistence configuration
type AuditConfig struct {
	DBPath string // sqlite file, ":memory:" for ephemeral runs
}

// ExportConfig holds tabular output configuration
type ExportConfig struct {
	OutDir    string
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Workers:         getEnvAsInt("PIPELINE_WORKERS", runtime.NumCPU()),
			FuzzyThreshold:  getEnvAsFloat("FUZZY_COMUNA_THRESHOLD", 0.72),
			DocumentTimeout: getEnvAsDuration("DOCUMENT_TIMEOUT", 30*time.Second),
		},
		Audit: AuditConfig{
			DBPath: getEnv("AUDIT_DB_PATH", "audit.db"),
		},
		Export: ExportConfig{
			OutDir:    getEnv("EXPORT_OUT_DIR", "outputs"),
			SheetName: getEnv("EXPORT_SHEET_NAME", "Datos_Contratos"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
