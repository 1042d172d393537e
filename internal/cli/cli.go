package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"geier-toolbox/internal/ai"
	"geier-toolbox/internal/config"
	"geier-toolbox/internal/game"
	"geier-toolbox/internal/player"
	"geier-toolbox/internal/statslog"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const botName = "DoomBot"

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "simulate":
		if len(args) != 3 {
			c.printUsage()
			return errors.New("invalid arguments for 'simulate' command")
		}
		games, err := strconv.Atoi(args[1])
		if err != nil || games < 1 {
			return fmt.Errorf("invalid number of games '%s'", args[1])
		}
		return c.runSimulationMode(withGames(cfg, games), args[2], rand)
	case "play":
		games := cfg.Games
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid number of games '%s'", args[1])
			}
			games = n
		}
		return c.runPlayMode(withGames(cfg, games), rand)
	case "stats":
		if len(args) != 2 {
			c.printUsage()
			return errors.New("invalid arguments for 'stats' command")
		}
		return c.runStatsMode(args[1], cfg.ConfidenceThreshold)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func withGames(cfg *config.GameConfig, games int) *config.GameConfig {
	cp := cfg.DeepCopy()
	cp.Games = games
	return cp
}

func (c *CLI) newOpponent(kind string, rand *rand.Rand) (player.Player, error) {
	switch kind {
	case "random":
		return player.NewRandomPlayer(rand), nil
	case "rank":
		return player.NewRankPlayer(), nil
	default:
		return nil, fmt.Errorf("unknown opponent '%s' (want random or rank)", kind)
	}
}

func (c *CLI) runSimulationMode(cfg *config.GameConfig, opponentKind string, rand *rand.Rand) error {
	C.Header.Println("--- Running Fast Simulation ---")

	opponent, err := c.newOpponent(opponentKind, newRand(rand))
	if err != nil {
		return err
	}
	sink, err := openSinks(cfg, c.log)
	if err != nil {
		return err
	}
	if sink != nil {
		defer closeSink(sink, c.log)
	}

	brain := ai.NewDoomBrain(c.log, ai.NewRandomChooser(newRand(rand)), sink)
	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&SimulationRenderer{})

	g, err := builder.WithPlayer(botName, brain).WithPlayer(opponentKind, opponent).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	if _, err := g.RunMatch(); err != nil {
		return err
	}

	DisplayStatistics(brain, cfg.ConfidenceThreshold)
	return nil
}

func (c *CLI) runPlayMode(cfg *config.GameConfig, rand *rand.Rand) error {
	C.Info.Println("\n--- You against the bot ---")
	c.printPlayHelp()

	name := c.promptForString("Enter your name: ")
	if name == botName {
		name += " (human)"
	}

	sink, err := openSinks(cfg, c.log)
	if err != nil {
		return err
	}
	if sink != nil {
		defer closeSink(sink, c.log)
	}

	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&SimulationRenderer{})
	human := player.NewHumanPlayer(builder.EventManager(), c.promptForCard)
	brain := ai.NewDoomBrain(c.log, ai.NewRandomChooser(newRand(rand)), sink)

	g, err := builder.WithPlayer(name, human).WithPlayer(botName, brain).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	if _, err := g.RunMatch(); err != nil {
		if errors.Is(err, errQuit) {
			C.Info.Println("\nGoodbye!")
			return nil
		}
		return err
	}

	DisplayStatistics(brain, cfg.ConfidenceThreshold)
	return nil
}

func (c *CLI) runStatsMode(path string, threshold float64) error {
	observations, err := statslog.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read statistics: %w", err)
	}
	RenderStatistics(fmt.Sprintf("Statistics from %s", path), observations, threshold)
	return nil
}

// newRand derives an independent source so each component's choices stay reproducible.
func newRand(parent *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(parent.Int63()))
}

// openSinks opens every persistence target named in cfg. It returns a nil Sink when none is configured.
func openSinks(cfg *config.GameConfig, log logrus.FieldLogger) (statslog.Sink, error) {
	var sinks statslog.MultiSink
	if cfg.StatsFile != "" {
		f, err := statslog.OpenFile(cfg.StatsFile)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, f)
	}
	if cfg.StatsDB != "" {
		db, err := statslog.OpenSQLite(cfg.StatsDB)
		if err != nil {
			closeSink(sinks, log)
			return nil, err
		}
		log.Debugf("Recording statistics under match %s.", db.MatchID())
		sinks = append(sinks, db)
	}
	if len(sinks) == 0 {
		return nil, nil
	}
	return sinks, nil
}

func closeSink(s statslog.Sink, log logrus.FieldLogger) {
	if err := s.Close(); err != nil {
		log.Warnf("Closing statistics sink: %v", err)
	}
}
