package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultConfig(t *testing.T) {
	// GIVEN the shipped default configuration
	cfg, err := Load("../../default_config.json")
	require.NoError(t, err)

	// THEN the decks and derived round counts match the standard game
	assert.Len(t, cfg.PointValues, 15)
	assert.Len(t, cfg.CardValues, 15)
	assert.Equal(t, -5, cfg.PointValues[0])
	assert.Equal(t, 10, cfg.PointValues[len(cfg.PointValues)-1])
	assert.Equal(t, 15, cfg.RoundsPerGame())
	assert.Equal(t, cfg.Games*15, cfg.TotalRounds())
	assert.Equal(t, 30.0, cfg.ConfidenceThreshold)
	assert.Equal(t, 10, cfg.MinRounds)
}

func TestLoadEnvOverrides(t *testing.T) {
	// GIVEN a config file and environment overrides
	path := writeConfig(t, `{"point_values":[3,1,2],"card_values":[2,1,3],"games":2,"confidence_threshold":30,"min_rounds":1}`)
	t.Setenv(EnvGames, "7")
	t.Setenv(EnvStatsFile, "/tmp/stats.txt")

	// WHEN it is loaded
	cfg, err := Load(path)
	require.NoError(t, err)

	// THEN the environment wins and the decks are sorted
	assert.Equal(t, 7, cfg.Games)
	assert.Equal(t, "/tmp/stats.txt", cfg.StatsFile)
	assert.Equal(t, []int{1, 2, 3}, cfg.PointValues)
	assert.Equal(t, []int{1, 2, 3}, cfg.CardValues)
}

func TestLoadFillsMissingTuningKeys(t *testing.T) {
	// GIVEN a config that names the decks but neither min_rounds nor confidence_threshold
	path := writeConfig(t, `{"point_values":[1,2],"card_values":[1,2],"games":1}`)

	// WHEN it is loaded
	cfg, err := Load(path)
	require.NoError(t, err)

	// THEN the statistics gate and threshold keep their usual values
	assert.Equal(t, DefaultMinRounds, cfg.MinRounds)
	assert.Equal(t, float64(DefaultConfidenceThreshold), cfg.ConfidenceThreshold)

	t.Run("explicit values still win", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `{"point_values":[1],"card_values":[1],"games":1,"min_rounds":3,"confidence_threshold":45}`))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.MinRounds)
		assert.Equal(t, 45.0, cfg.ConfidenceThreshold)
	})
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"empty point deck":   `{"point_values":[],"card_values":[1],"games":1,"confidence_threshold":30}`,
		"duplicate cards":    `{"point_values":[1],"card_values":[1,1],"games":1,"confidence_threshold":30}`,
		"no games":           `{"point_values":[1],"card_values":[1],"games":0,"confidence_threshold":30}`,
		"threshold too high": `{"point_values":[1],"card_values":[1],"games":1,"confidence_threshold":100}`,
		"malformed json":     `{"point_values":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	t.Run("bad games override", func(t *testing.T) {
		t.Setenv(EnvGames, "many")
		_, err := Load(writeConfig(t, `{"point_values":[1],"card_values":[1],"games":1,"confidence_threshold":30}`))
		assert.Error(t, err)
	})
}

func TestDeepCopyIsolatesSlices(t *testing.T) {
	cfg, err := Load("../../default_config.json")
	require.NoError(t, err)

	cp := cfg.DeepCopy()
	cp.CardValues[0] = 99

	assert.Equal(t, 1, cfg.CardValues[0])
	assert.Equal(t, cfg.Games, cp.Games)
}
