package ai

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// MaxCardValue is the strongest card in the deck. A predicted MaxCardValue can only be drawn, never beaten.
const MaxCardValue = 15

// ErrEmptyHand is returned when a card is requested but the hand has none left.
var ErrEmptyHand = errors.New("no legal move: hand is empty")

// HandOwner is the bot's own hand.
type HandOwner interface {
	Remaining() []int
	CanPlay(value int) bool
	Take(value int) (int, bool)
}

// OpponentView is what the bot can see of its single opponent.
type OpponentView interface {
	LastMove() (int, bool)
	CanPlay(value int) bool
	WinCount() int
}

type SelfView interface {
	WinCount() int
}

// RoundCounter reports how many rounds of the match have been completed.
type RoundCounter interface {
	RoundsPlayed() int
}

// Deps are the collaborators an Engine reads from and plays through.
type Deps struct {
	Hand     HandOwner
	Opponent OpponentView
	Self     SelfView
	Clock    RoundCounter
}

// Settings tune when the statistics are trusted.
type Settings struct {
	TotalRounds         int
	MinRounds           int
	ConfidenceThreshold float64 // percent; a response must exceed it to count as predictable
}

// DefaultSettings returns the standard gate of 10 rounds and a 30% threshold.
func DefaultSettings(totalRounds int) Settings {
	return Settings{TotalRounds: totalRounds, MinRounds: 10, ConfidenceThreshold: 30}
}

// Engine picks one card per round from the opponent statistics, falling back to the
// middle-field heuristic whenever the statistics are missing or unconvincing.
type Engine struct {
	deps     Deps
	settings Settings
	stats    *Statistics
	fields   *FieldSet
	chooser  Chooser
	log      logrus.FieldLogger

	lastPointValue int
	firstRound     bool
}

func NewEngine(deps Deps, settings Settings, chooser Chooser, logger logrus.FieldLogger) *Engine {
	return &Engine{
		deps:     deps,
		settings: settings,
		stats:    NewStatistics(),
		fields:   NewFieldSet(),
		chooser:  chooser,
		log:      logger,
	}
}

func (e *Engine) Statistics() *Statistics { return e.stats }
func (e *Engine) Fields() *FieldSet       { return e.fields }

// ResetFields refills the middle-field buckets. Called at the start of every game.
func (e *Engine) ResetFields() {
	e.fields.Reset()
}

// ResetMatch forgets everything learned about the opponent.
func (e *Engine) ResetMatch() {
	e.stats.Reset()
	e.fields.Reset()
	e.lastPointValue = 0
	e.firstRound = false
}

// Decide runs one round: it learns from the opponent's previous card and then picks ours.
func (e *Engine) Decide(pointValue int) (int, error) {
	if last, ok := e.deps.Opponent.LastMove(); !ok {
		e.firstRound = true
	} else if e.firstRound {
		// The card now visible answered the previous round's point value.
		e.stats.Record(e.lastPointValue, last)
		e.firstRound = false
	} else {
		e.stats.Record(pointValue, last)
	}
	e.lastPointValue = pointValue

	return e.Predict(pointValue)
}
