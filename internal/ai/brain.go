package ai

import (
	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
	"geier-toolbox/internal/player"
	"geier-toolbox/internal/statslog"

	"github.com/sirupsen/logrus"
)

// DoomBrain implements the Player interface on top of the prediction Engine.
type DoomBrain struct {
	name    string
	hand    *player.Hand
	engine  *Engine
	chooser Chooser
	sink    statslog.Sink
	log     logrus.FieldLogger
}

// NewDoomBrain is the constructor for the AI player. sink may be nil, in which case
// statistics are not persisted.
func NewDoomBrain(logger logrus.FieldLogger, chooser Chooser, sink statslog.Sink) *DoomBrain {
	return &DoomBrain{
		hand:    player.NewHand(nil),
		chooser: chooser,
		sink:    sink,
		log:     logger,
	}
}

// --- Public Getters for CLI ---
func (b *DoomBrain) Statistics() *Statistics { return b.engine.Statistics() }
func (b *DoomBrain) Engine() *Engine         { return b.engine }

func (b *DoomBrain) Name() string  { return b.name }
func (b *DoomBrain) IsHuman() bool { return false }
func (b *DoomBrain) Hand() []int   { return b.hand.Remaining() }

func (b *DoomBrain) Setup(cfg *config.GameConfig, table player.Table, myName string) {
	b.name = myName
	b.log = b.log.WithField("player", myName)

	settings := Settings{
		TotalRounds:         table.TotalRounds(),
		MinRounds:           cfg.MinRounds,
		ConfidenceThreshold: cfg.ConfidenceThreshold,
	}
	deps := Deps{
		Hand:     b.hand,
		Opponent: table.Opponent(myName),
		Self:     table.Seat(myName),
		Clock:    table,
	}
	b.engine = NewEngine(deps, settings, b.chooser, b.log)
	b.log.Debugf("Prediction engine initialized for %d rounds.", settings.TotalRounds)
}

func (b *DoomBrain) ReceiveHand(cards []int) {
	b.hand.Fill(cards)
}

func (b *DoomBrain) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.MatchStartEvent:
		b.engine.ResetMatch()
	case events.GameStartEvent:
		b.log.Debugf("Game %d: refilling middle fields.", event.GameNumber)
		b.engine.ResetFields()
	case events.MatchOverEvent:
		b.persistStatistics()
	}
}

func (b *DoomBrain) ChooseCard(pointValue int) (int, error) {
	return b.engine.Decide(pointValue)
}

func (b *DoomBrain) persistStatistics() {
	if b.sink == nil {
		return
	}
	n := statslog.Export(b.sink, b.engine.Statistics().Observations(), b.log)
	b.log.Infof("Saved %d opponent statistics.", n)
}
