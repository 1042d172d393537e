package player

import (
	"errors"
	"math/rand"
	"sort"

	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
)

// ErrNoCards is returned when a player is asked for a card with an empty hand.
var ErrNoCards = errors.New("no cards left in hand")

// RandomPlayer plays a uniformly random card every round.
type RandomPlayer struct {
	name string
	hand *Hand
	rand *rand.Rand
}

func NewRandomPlayer(rand *rand.Rand) *RandomPlayer {
	return &RandomPlayer{hand: NewHand(nil), rand: rand}
}

func (p *RandomPlayer) Name() string               { return p.name }
func (p *RandomPlayer) IsHuman() bool              { return false }
func (p *RandomPlayer) Hand() []int                { return p.hand.Remaining() }
func (p *RandomPlayer) HandleEvent(e events.Event) {}

func (p *RandomPlayer) ReceiveHand(cards []int) {
	if p.hand == nil {
		p.hand = NewHand(nil)
	}
	p.hand.Fill(cards)
}

func (p *RandomPlayer) Setup(cfg *config.GameConfig, table Table, myName string) {
	p.name = myName
}

func (p *RandomPlayer) ChooseCard(pointValue int) (int, error) {
	cards := p.hand.Remaining()
	if len(cards) == 0 {
		return 0, ErrNoCards
	}
	value, _ := p.hand.Take(cards[p.rand.Intn(len(cards))])
	return value, nil
}

// RankPlayer answers each point value with the card of matching rank: the lowest point
// value gets the lowest card, the highest point value the highest card. When that card
// is spent it plays the closest remaining one, preferring the lower.
type RankPlayer struct {
	name   string
	hand   *Hand
	points []int
	cards  []int
}

func NewRankPlayer() *RankPlayer {
	return &RankPlayer{hand: NewHand(nil)}
}

func (p *RankPlayer) Name() string               { return p.name }
func (p *RankPlayer) IsHuman() bool              { return false }
func (p *RankPlayer) Hand() []int                { return p.hand.Remaining() }
func (p *RankPlayer) HandleEvent(e events.Event) {}

func (p *RankPlayer) ReceiveHand(cards []int) {
	if p.hand == nil {
		p.hand = NewHand(nil)
	}
	p.hand.Fill(cards)
}

func (p *RankPlayer) Setup(cfg *config.GameConfig, table Table, myName string) {
	p.name = myName
	p.points = append([]int(nil), cfg.PointValues...)
	p.cards = append([]int(nil), cfg.CardValues...)
	sort.Ints(p.points)
	sort.Ints(p.cards)
}

// Target is the card the player wants for pointValue, before availability is considered.
func (p *RankPlayer) Target(pointValue int) int {
	if len(p.cards) == 0 {
		return 0
	}
	rank := sort.SearchInts(p.points, pointValue)
	if len(p.points) > 1 {
		rank = rank * (len(p.cards) - 1) / (len(p.points) - 1)
	}
	if rank >= len(p.cards) {
		rank = len(p.cards) - 1
	}
	return p.cards[rank]
}

func (p *RankPlayer) ChooseCard(pointValue int) (int, error) {
	remaining := p.hand.Remaining()
	if len(remaining) == 0 {
		return 0, ErrNoCards
	}
	target := p.Target(pointValue)
	best := remaining[0]
	for _, c := range remaining {
		if distance(c, target) < distance(best, target) {
			best = c
		}
	}
	value, _ := p.hand.Take(best)
	return value, nil
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
