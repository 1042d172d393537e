package player

import "sort"

// Hand is the set of card values a participant still holds, kept in ascending order.
type Hand struct {
	cards []int
}

// NewHand copies cards into a new sorted hand. Duplicate values are dropped.
func NewHand(cards []int) *Hand {
	h := &Hand{}
	h.Fill(cards)
	return h
}

// Fill replaces the hand's contents.
func (h *Hand) Fill(cards []int) {
	h.cards = h.cards[:0]
	seen := make(map[int]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		h.cards = append(h.cards, c)
	}
	sort.Ints(h.cards)
}

// Remaining returns a copy of the cards still in hand.
func (h *Hand) Remaining() []int {
	out := make([]int, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int { return len(h.cards) }

func (h *Hand) CanPlay(value int) bool {
	_, ok := h.index(value)
	return ok
}

// Take removes value from the hand and returns it.
func (h *Hand) Take(value int) (int, bool) {
	i, ok := h.index(value)
	if !ok {
		return 0, false
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return value, true
}

func (h *Hand) index(value int) (int, bool) {
	i := sort.SearchInts(h.cards, value)
	return i, i < len(h.cards) && h.cards[i] == value
}
