package cli

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
	"geier-toolbox/internal/statslog"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return log
}

func testConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.Load("../../default_config.json")
	require.NoError(t, err)
	return cfg
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestOpenSinks(t *testing.T) {
	t.Run("nothing configured yields a nil sink", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StatsFile, cfg.StatsDB = "", ""

		sink, err := openSinks(cfg, quietLogger())
		require.NoError(t, err)
		assert.Nil(t, sink)
	})

	t.Run("file and database are both written", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(t)
		cfg.StatsFile = filepath.Join(dir, "stats.txt")
		cfg.StatsDB = filepath.Join(dir, "stats.db")

		sink, err := openSinks(cfg, quietLogger())
		require.NoError(t, err)
		require.IsType(t, statslog.MultiSink{}, sink)
		assert.Len(t, sink.(statslog.MultiSink), 2)

		require.NoError(t, sink.Append(statslog.Observation{PointValue: 4, RespondedValue: 9, Weight: 2}))
		require.NoError(t, sink.Close())

		saved, err := statslog.ReadFile(cfg.StatsFile)
		require.NoError(t, err)
		assert.Equal(t, []statslog.Observation{{PointValue: 4, RespondedValue: 9, Weight: 2}}, saved)
	})

	t.Run("an unwritable file is reported", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StatsFile = filepath.Join(t.TempDir(), "missing", "stats.txt")

		_, err := openSinks(cfg, quietLogger())
		assert.Error(t, err)
	})
}

func TestRunStatsMode(t *testing.T) {
	c := &CLI{log: quietLogger()}
	path := filepath.Join(t.TempDir(), "stats.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("3, 7, 4\n3, 12, 1\n-2, 1, 5\n"), 0o644))

	assert.NoError(t, c.runStatsMode(path, 30))
	assert.Error(t, c.runStatsMode(filepath.Join(t.TempDir(), "nope.txt"), 30))
}

func TestWithGamesLeavesOriginalUntouched(t *testing.T) {
	cfg := testConfig(t)
	games := cfg.Games

	cp := withGames(cfg, 3)

	assert.Equal(t, 3, cp.Games)
	assert.Equal(t, games, cfg.Games)
}

func TestNewOpponent(t *testing.T) {
	c := &CLI{log: quietLogger()}
	r := rand.New(rand.NewSource(1))

	for _, kind := range []string{"random", "rank"} {
		p, err := c.newOpponent(kind, r)
		require.NoError(t, err, kind)
		assert.False(t, p.IsHuman())
	}
	_, err := c.newOpponent("psychic", r)
	assert.Error(t, err)
}

func TestRendererHandlesEveryEvent(t *testing.T) {
	r := &SimulationRenderer{}
	evs := []events.Event{
		events.MatchStartEvent{Players: []string{"a", "b"}, Games: 1, TotalRounds: 15},
		events.GameStartEvent{GameNumber: 1},
		events.HumanHandRevealedEvent{PlayerName: "a", Hand: []int{1, 2}},
		events.RoundStartEvent{GameNumber: 1, Round: 1, PointValue: 5, Pot: 8},
		events.RoundResolvedEvent{Round: 1, PointValue: 5, Pot: 8, Plays: map[string]int{"a": 3, "b": 3}},
		events.RoundResolvedEvent{Round: 2, PointValue: -2, Pot: -2, Plays: map[string]int{"a": 3, "b": 4}, Winner: "b", Taker: "a"},
		events.GameOverEvent{GameNumber: 1, Scores: map[string]int{"a": 1, "b": 1}},
		events.MatchOverEvent{Wins: map[string]int{"a": 1}, GameWins: map[string]int{"a": 0, "b": 0}, Rounds: 2},
	}
	assert.NotPanics(t, func() {
		for _, e := range evs {
			r.HandleEvent(e)
		}
	})
}

func TestRenderStatisticsEmpty(t *testing.T) {
	assert.NotPanics(t, func() { RenderStatistics("empty", nil, 30) })
}

func TestShareCellFollowsThreshold(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	// GIVEN a 40% share
	// WHEN the bot's threshold is the usual 30, or raised to 50
	usual := shareCell(40, 30)
	raised := shareCell(40, 50)

	// THEN it is highlighted only when it clears the threshold in force
	assert.Contains(t, usual, "\x1b[")
	assert.Equal(t, "40.0%", raised)
	assert.Equal(t, "30.0%", shareCell(30, 30))
}
