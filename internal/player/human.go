package player

import (
	"errors"
	"fmt"

	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
)

// ErrIllegalCard is returned when a player tries to play a card it does not hold.
var ErrIllegalCard = errors.New("card not in hand")

// PromptFunc asks a person which card to play. It receives the point value and the current hand.
type PromptFunc func(pointValue int, hand []int) (int, error)

// HumanPlayer represents a player controlled by a person.
type HumanPlayer struct {
	name         string
	hand         *Hand
	prompt       PromptFunc
	eventManager *events.Manager
}

// NewHumanPlayer accepts the event manager it will publish to and the prompt used to pick cards.
func NewHumanPlayer(eventManager *events.Manager, prompt PromptFunc) *HumanPlayer {
	return &HumanPlayer{
		hand:         NewHand(nil),
		prompt:       prompt,
		eventManager: eventManager,
	}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }
func (h *HumanPlayer) Hand() []int   { return h.hand.Remaining() }

func (h *HumanPlayer) Setup(cfg *config.GameConfig, table Table, myName string) {
	h.name = myName
}

func (h *HumanPlayer) ReceiveHand(cards []int) {
	h.hand.Fill(cards)
	h.eventManager.Publish(events.HumanHandRevealedEvent{
		PlayerName: h.name,
		Hand:       h.Hand(),
	})
}

func (h *HumanPlayer) HandleEvent(e events.Event) {}

func (h *HumanPlayer) ChooseCard(pointValue int) (int, error) {
	value, err := h.prompt(pointValue, h.Hand())
	if err != nil {
		return 0, err
	}
	if _, ok := h.hand.Take(value); !ok {
		return 0, fmt.Errorf("%s played %d: %w", h.name, value, ErrIllegalCard)
	}
	return value, nil
}
