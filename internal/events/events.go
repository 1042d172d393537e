package events

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Lifecycle Events ---

// MatchStartEvent is published once before the first game of a match.
type MatchStartEvent struct {
	Players     []string
	Games       int
	TotalRounds int
}

// GameStartEvent signals that hands were refilled for a new game.
// Players reset any per-game bookkeeping when they see it.
type GameStartEvent struct {
	GameNumber int
}

type RoundStartEvent struct {
	GameNumber int
	Round      int // 1-based, across the whole match
	PointValue int
	Pot        int // includes any carried-over points
}

// RoundResolvedEvent carries the revealed cards and the outcome of a round.
type RoundResolvedEvent struct {
	Round      int
	PointValue int
	Pot        int
	Plays      map[string]int
	Winner     string // higher card; empty on a tie
	Taker      string // who received the pot; empty when it carries over
}

type GameOverEvent struct {
	GameNumber int
	Scores     map[string]int
	Winner     string // empty on a draw
}

// MatchOverEvent is published after the final game. Wins counts rounds won.
type MatchOverEvent struct {
	Wins     map[string]int
	GameWins map[string]int
	Rounds   int
}

type HumanHandRevealedEvent struct {
	PlayerName string
	Hand       []int
}
