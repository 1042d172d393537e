package player

import (
	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
)

// Player is the interface that all player types (human or AI) must implement.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Name() string
	IsHuman() bool
	Hand() []int
	Setup(cfg *config.GameConfig, table Table, myName string)
	ReceiveHand(cards []int)
	// ChooseCard returns the value of the card played against pointValue
	// and removes it from the player's own hand.
	ChooseCard(pointValue int) (int, error)
}

// Seat is the public view of one participant, as seen from across the table.
type Seat interface {
	Name() string
	CanPlay(value int) bool
	WinCount() int
	LastMove() (int, bool)
}

// Table exposes what a player may observe about a running match.
type Table interface {
	Seat(name string) Seat
	// Opponent returns the single other participant.
	Opponent(name string) Seat
	RoundsPlayed() int
	TotalRounds() int
}
