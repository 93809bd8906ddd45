package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "resources", cfg.DataDir)
	require.Equal(t, 15000, cfg.MinBlobArea)
	require.Equal(t, 300000, cfg.MaxBlobArea)
	require.Equal(t, 21, cfg.ErosionMargin)
	require.Equal(t, "svm", cfg.Classifier)
	require.Equal(t, 500*time.Millisecond, cfg.ViewDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLASSIFIER", "knn")
	t.Setenv("KNN_NEIGHBORS", "5")
	t.Setenv("THRESHOLD_HIGH", "180.5")
	t.Setenv("VIEW_DELAY_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "knn", cfg.Classifier)
	require.Equal(t, 5, cfg.KNNNeighbors)
	require.Equal(t, 180.5, cfg.ThresholdHigh)
	require.Equal(t, time.Duration(0), cfg.ViewDelay)
}

func TestLoad_BadNumberFallsBack(t *testing.T) {
	t.Setenv("MIN_BLOB_AREA", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 15000, cfg.MinBlobArea)
}
