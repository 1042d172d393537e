package game

import (
	"fmt"
	"math/rand"

	"geier-toolbox/internal/config"
	"geier-toolbox/internal/events"
	"geier-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

// seat is the game's authoritative record of one participant.
type seat struct {
	name     string
	player   player.Player
	hand     *player.Hand
	wins     int
	gameWins int
	score    int
	lastMove int
	hasMoved bool
}

func (s *seat) Name() string           { return s.name }
func (s *seat) CanPlay(value int) bool { return s.hand.CanPlay(value) }
func (s *seat) WinCount() int          { return s.wins }
func (s *seat) LastMove() (int, bool)  { return s.lastMove, s.hasMoved }

func (s *seat) resetForGame(cards []int) {
	s.hand.Fill(cards)
	s.score = 0
	s.hasMoved = false
}

func (s *seat) record(card int) {
	s.lastMove = card
	s.hasMoved = true
}

// Game represents the state and logic of a single match between two players.
type Game struct {
	Config       *config.GameConfig
	EventManager *events.Manager
	seats        []*seat
	rounds       int
	log          *logrus.Logger
	rand         *rand.Rand
}

// MatchResult summarizes a finished match.
type MatchResult struct {
	Wins     map[string]int // rounds won
	GameWins map[string]int
	Rounds   int
}

// --- player.Table ---

func (g *Game) Seat(name string) player.Seat {
	for _, s := range g.seats {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (g *Game) Opponent(name string) player.Seat {
	for _, s := range g.seats {
		if s.Name() != name {
			return s
		}
	}
	return nil
}

func (g *Game) RoundsPlayed() int { return g.rounds }
func (g *Game) TotalRounds() int  { return g.Config.TotalRounds() }

// Players returns the participants in seating order.
func (g *Game) Players() []player.Player {
	out := make([]player.Player, len(g.seats))
	for i, s := range g.seats {
		out[i] = s.player
	}
	return out
}

// RunMatch plays every configured game and returns the final tallies.
func (g *Game) RunMatch() (MatchResult, error) {
	g.EventManager.Publish(events.MatchStartEvent{
		Players:     g.names(),
		Games:       g.Config.Games,
		TotalRounds: g.TotalRounds(),
	})

	for n := 1; n <= g.Config.Games; n++ {
		if err := g.playGame(n); err != nil {
			return MatchResult{}, fmt.Errorf("game %d: %w", n, err)
		}
	}

	result := MatchResult{Wins: map[string]int{}, GameWins: map[string]int{}, Rounds: g.rounds}
	for _, s := range g.seats {
		result.Wins[s.Name()] = s.wins
		result.GameWins[s.Name()] = s.gameWins
	}
	g.EventManager.Publish(events.MatchOverEvent{Wins: result.Wins, GameWins: result.GameWins, Rounds: result.Rounds})
	return result, nil
}

func (g *Game) playGame(number int) error {
	deck := append([]int(nil), g.Config.PointValues...)
	g.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	for _, s := range g.seats {
		s.resetForGame(g.Config.CardValues)
		s.player.ReceiveHand(g.Config.CardValues)
	}
	g.EventManager.Publish(events.GameStartEvent{GameNumber: number})
	g.log.Debugf("Game %d point order: %v", number, deck)

	pot := 0
	for _, point := range deck {
		pot += point
		g.EventManager.Publish(events.RoundStartEvent{GameNumber: number, Round: g.rounds + 1, PointValue: point, Pot: pot})

		plays, err := g.collectPlays(point)
		if err != nil {
			return err
		}
		resolved := g.resolve(point, pot, plays)
		if resolved.Taker != "" {
			pot = 0
		}
		g.rounds++
		g.EventManager.Publish(resolved)
	}
	if pot != 0 {
		g.log.Debugf("Game %d ended with %d points still on the table.", number, pot)
	}

	over := events.GameOverEvent{GameNumber: number, Scores: map[string]int{}}
	best, draw := g.seats[0], false
	for _, s := range g.seats {
		over.Scores[s.Name()] = s.score
		if s == best {
			continue
		}
		if s.score > best.score {
			best, draw = s, false
		} else if s.score == best.score {
			draw = true
		}
	}
	if !draw {
		best.gameWins++
		over.Winner = best.Name()
	}
	g.EventManager.Publish(over)
	return nil
}

// collectPlays asks every player for a card before any is revealed.
func (g *Game) collectPlays(point int) (map[string]int, error) {
	plays := make(map[string]int, len(g.seats))
	for _, s := range g.seats {
		card, err := s.player.ChooseCard(point)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		plays[s.Name()] = card
	}
	// Hands only change once everyone has chosen, so no seat sees a card early.
	for _, s := range g.seats {
		card := plays[s.Name()]
		if _, ok := s.hand.Take(card); !ok {
			return nil, fmt.Errorf("%s played %d: %w", s.Name(), card, player.ErrIllegalCard)
		}
		s.record(card)
	}
	return plays, nil
}

// resolve applies the round: the higher card wins the round; a positive pot goes to
// the higher card and a negative pot to the lower one. Equal cards carry the pot over.
func (g *Game) resolve(point, pot int, plays map[string]int) events.RoundResolvedEvent {
	ev := events.RoundResolvedEvent{Round: g.rounds + 1, PointValue: point, Pot: pot, Plays: plays}

	high, low := g.seats[0], g.seats[1]
	if plays[high.Name()] < plays[low.Name()] {
		high, low = low, high
	}
	if plays[high.Name()] == plays[low.Name()] {
		g.log.Debugf("Round %d tied at %d; %d points carry over.", ev.Round, plays[high.Name()], pot)
		return ev
	}

	high.wins++
	ev.Winner = high.Name()
	taker := high
	if pot < 0 {
		taker = low
	}
	taker.score += pot
	ev.Taker = taker.Name()
	return ev
}

func (g *Game) names() []string {
	names := make([]string, len(g.seats))
	for i, s := range g.seats {
		names[i] = s.Name()
	}
	return names
}
