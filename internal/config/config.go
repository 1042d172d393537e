package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override values from the JSON file.
const (
	EnvGames     = "GEIER_GAMES"
	EnvStatsFile = "GEIER_STATS_FILE"
	EnvStatsDB   = "GEIER_STATS_DB"
)

// GameConfig holds the static definitions for a match.
type GameConfig struct {
	PointValues         []int   `json:"point_values"`
	CardValues          []int   `json:"card_values"`
	Games               int     `json:"games"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	MinRounds           int     `json:"min_rounds"`
	StatsFile           string  `json:"stats_file"`
	StatsDB             string  `json:"stats_db"`
}

// Values used when the configuration file leaves a tuning key out.
const (
	DefaultMinRounds           = 10
	DefaultConfidenceThreshold = 30
)

// Load reads, parses, and prepares the game configuration from a file.
// A .env file in the working directory, if present, is applied on top.
func Load(path string) (*GameConfig, error) {
	cfg := GameConfig{
		MinRounds:           DefaultMinRounds,
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	sort.Ints(cfg.PointValues)
	sort.Ints(cfg.CardValues)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *GameConfig) applyEnv() error {
	if v, ok := os.LookupEnv(EnvGames); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGames, err)
		}
		c.Games = n
	}
	if v, ok := os.LookupEnv(EnvStatsFile); ok {
		c.StatsFile = v
	}
	if v, ok := os.LookupEnv(EnvStatsDB); ok {
		c.StatsDB = v
	}
	return nil
}

// Validate checks that the decks and strategy knobs are usable.
func (c *GameConfig) Validate() error {
	if len(c.PointValues) == 0 {
		return errors.New("point_values must not be empty")
	}
	if len(c.CardValues) == 0 {
		return errors.New("card_values must not be empty")
	}
	if hasDuplicates(c.PointValues) {
		return errors.New("point_values must be unique")
	}
	if hasDuplicates(c.CardValues) {
		return errors.New("card_values must be unique")
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.ConfidenceThreshold <= 0 || c.ConfidenceThreshold >= 100 {
		return fmt.Errorf("confidence_threshold must be within (0, 100), got %v", c.ConfidenceThreshold)
	}
	if c.MinRounds < 0 {
		return fmt.Errorf("min_rounds must not be negative, got %d", c.MinRounds)
	}
	return nil
}

// RoundsPerGame is the number of point values revealed in one game.
func (c *GameConfig) RoundsPerGame() int { return len(c.PointValues) }

// TotalRounds is the length of the whole match.
func (c *GameConfig) TotalRounds() int { return c.Games * c.RoundsPerGame() }

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := *c
	newCfg.PointValues = make([]int, len(c.PointValues))
	copy(newCfg.PointValues, c.PointValues)
	newCfg.CardValues = make([]int, len(c.CardValues))
	copy(newCfg.CardValues, c.CardValues)
	return &newCfg
}

func hasDuplicates(values []int) bool {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
