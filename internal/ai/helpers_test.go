package ai

import (
	"io/ioutil"

	"geier-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

type fakeOpponent struct {
	last  int
	moved bool
	spent map[int]bool
	wins  int
}

func (o *fakeOpponent) LastMove() (int, bool)  { return o.last, o.moved }
func (o *fakeOpponent) CanPlay(value int) bool { return !o.spent[value] }
func (o *fakeOpponent) WinCount() int          { return o.wins }

func (o *fakeOpponent) play(card int) {
	o.last, o.moved = card, true
}

type fakeSelf struct{ wins int }

func (s *fakeSelf) WinCount() int { return s.wins }

type fakeClock struct{ rounds int }

func (c *fakeClock) RoundsPlayed() int { return c.rounds }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return log
}

func fullDeck() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
}

func without(cards []int, drop ...int) []int {
	skip := map[int]bool{}
	for _, d := range drop {
		skip[d] = true
	}
	var out []int
	for _, c := range cards {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}

type testRig struct {
	engine   *Engine
	hand     *player.Hand
	opponent *fakeOpponent
	self     *fakeSelf
	clock    *fakeClock
}

// newTestRig builds an engine over a 100-round match, past the statistics gate, with
// win counts that keep the similarity test false. Choices are deterministic: always
// the lowest candidate.
func newTestRig(hand []int) *testRig {
	r := &testRig{
		hand:     player.NewHand(hand),
		opponent: &fakeOpponent{spent: map[int]bool{}, wins: 20},
		self:     &fakeSelf{},
		clock:    &fakeClock{rounds: 10},
	}
	deps := Deps{Hand: r.hand, Opponent: r.opponent, Self: r.self, Clock: r.clock}
	r.engine = NewEngine(deps, DefaultSettings(100), &DeterministicChooser{}, quietLogger())
	return r
}

func (r *testRig) record(pointValue, response, times int) {
	for i := 0; i < times; i++ {
		r.engine.Statistics().Record(pointValue, response)
	}
}
