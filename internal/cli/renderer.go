package cli

import (
	"fmt"
	"sort"
	"strings"

	"geier-toolbox/internal/events"
)

// SimulationRenderer implements the events.Listener interface to print game state to the console.
type SimulationRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.MatchStartEvent:
		C.Header.Printf("--- Match: %s, %d games, %d rounds ---\n", strings.Join(event.Players, " vs "), event.Games, event.TotalRounds)
	case events.GameStartEvent:
		C.Header.Printf("\n--- Game %d ---\n", event.GameNumber)
	case events.HumanHandRevealedEvent:
		C.Info.Printf("\n%s's hand: %v\n", event.PlayerName, event.Hand)
	case events.RoundStartEvent:
		if event.Pot != event.PointValue {
			C.Info.Printf("Round %d: %s points (pot %s)\n", event.Round, ColorizePoints(event.PointValue), ColorizePoints(event.Pot))
		} else {
			C.Info.Printf("Round %d: %s points\n", event.Round, ColorizePoints(event.PointValue))
		}
	case events.RoundResolvedEvent:
		r.renderRound(event)
	case events.GameOverEvent:
		r.renderGameResult(event)
	case events.MatchOverEvent:
		r.renderMatchResult(event)
	}
}

func (r *SimulationRenderer) renderRound(event events.RoundResolvedEvent) {
	var parts []string
	for _, name := range sortedKeys(event.Plays) {
		parts = append(parts, fmt.Sprintf("%s plays %d", name, event.Plays[name]))
	}
	line := "  " + strings.Join(parts, ", ")
	if event.Taker == "" {
		C.Tie.Printf("%s -> tie, the pot carries over.\n", line)
		return
	}
	C.Info.Printf("%s -> %s takes %s.\n", line, event.Taker, ColorizePoints(event.Pot))
}

func (r *SimulationRenderer) renderGameResult(event events.GameOverEvent) {
	var parts []string
	for _, name := range sortedKeys(event.Scores) {
		parts = append(parts, fmt.Sprintf("%s %d", name, event.Scores[name]))
	}
	C.Header.Printf("Game %d over: %s\n", event.GameNumber, strings.Join(parts, ", "))
	if event.Winner == "" {
		C.Tie.Println("The game is a draw.")
	} else {
		C.Win.Printf("%s wins the game!\n", event.Winner)
	}
}

func (r *SimulationRenderer) renderMatchResult(event events.MatchOverEvent) {
	C.Header.Println("\n--- MATCH OVER ---")
	for _, name := range sortedKeys(event.GameWins) {
		C.Info.Printf("%s: %d games, %d of %d rounds won\n", name, event.GameWins[name], event.Wins[name], event.Rounds)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
