package game

import (
	"errors"
	"math/rand"

	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
	"geier-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	players      []player.Player
	names        []string
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithPlayer seats p under name. Seating order is the order of the calls.
func (b *GameBuilder) WithPlayer(name string, p player.Player) *GameBuilder {
	b.names = append(b.names, name)
	b.players = append(b.players, p)
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	if len(b.players) != 2 {
		return nil, errors.New("a match needs exactly two players")
	}
	if b.names[0] == b.names[1] {
		return nil, errors.New("player names must differ")
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	game := &Game{
		Config:       b.cfg,
		EventManager: b.eventManager,
		log:          b.log,
		rand:         b.rand,
	}

	// Seats must exist before Setup so players can look each other up.
	for i, p := range b.players {
		game.seats = append(game.seats, &seat{name: b.names[i], player: p, hand: player.NewHand(nil)})
	}
	for i, p := range b.players {
		p.Setup(b.cfg.DeepCopy(), game, b.names[i])
		b.eventManager.Subscribe(p)
	}

	return game, nil
}
