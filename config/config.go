package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the demo pipeline reads from the environment.
type Config struct {
	DataDir string // dataset root with Train/ and Test/ subdirectories
	OutDir  string // where overlays and the training set JSON are written

	ThresholdLow  float64 // foreground intensity range, lower bound
	ThresholdHigh float64 // foreground intensity range, upper bound
	MinBlobArea   int     // smallest accepted cookie blob, pixels
	MaxBlobArea   int     // largest accepted cookie blob, pixels
	ErosionMargin int     // mask erosion margin before feature statistics

	Classifier   string // "svm", "knn" or "bayes"
	KNNNeighbors int    // k for the kNN classifier

	ViewDelay time.Duration // demo pacing between test images, not correctness

	TelegramToken string // optional: enables the inspection bot
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:       getenv("DATA_DIR", "resources"),
		OutDir:        getenv("OUT_DIR", "out"),
		ThresholdLow:  getenvFloat("THRESHOLD_LOW", 0),
		ThresholdHigh: getenvFloat("THRESHOLD_HIGH", 200),
		MinBlobArea:   getenvInt("MIN_BLOB_AREA", 15000),
		MaxBlobArea:   getenvInt("MAX_BLOB_AREA", 300000),
		ErosionMargin: getenvInt("EROSION_MARGIN", 21),
		Classifier:    getenv("CLASSIFIER", "svm"),
		KNNNeighbors:  getenvInt("KNN_NEIGHBORS", 3),
		ViewDelay:     time.Duration(getenvInt("VIEW_DELAY_MS", 500)) * time.Millisecond,
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
