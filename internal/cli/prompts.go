package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"geier-toolbox/internal/ai"
	"geier-toolbox/internal/statslog"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/peterh/liner"
)

// errQuit is returned by prompts when the user aborts.
var errQuit = errors.New("quit")

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Win, Loss, Tie, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Win:    color.New(color.FgGreen),
	Loss:   color.New(color.FgRed),
	Tie:    color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// ColorizePoints renders a point value green when positive and red when negative.
func ColorizePoints(v int) string {
	if v < 0 {
		return C.Loss.Sprint(v)
	}
	return C.Win.Sprint(v)
}

// DisplayStatistics renders what the bot has learned about its opponent.
func DisplayStatistics(brain *ai.DoomBrain, threshold float64) {
	fmt.Println()
	RenderStatistics(fmt.Sprintf("%s's Opponent Statistics", brain.Name()), brain.Statistics().Observations(), threshold)
}

// RenderStatistics displays observations in a table, grouped by point value, with each
// response's share of its point value's total weight. Shares above threshold are highlighted.
func RenderStatistics(title string, observations []statslog.Observation, threshold float64) {
	totals := make(map[int]int)
	for _, o := range observations {
		totals[o.PointValue] += o.Weight
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Points", "Response", "Weight", "Share"})
	for i, o := range observations {
		if i > 0 && o.PointValue != observations[i-1].PointValue {
			t.AppendSeparator()
		}
		share := float64(o.Weight) * 100 / float64(totals[o.PointValue])
		t.AppendRow(table.Row{ColorizePoints(o.PointValue), o.RespondedValue, o.Weight, shareCell(share, threshold)})
	}
	t.AppendFooter(table.Row{"", "", len(observations), "rows"})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

// shareCell formats a share, highlighting it when the bot would treat it as predictable.
func shareCell(share, threshold float64) string {
	cell := fmt.Sprintf("%.1f%%", share)
	if share > threshold {
		return C.Win.Sprint(cell)
	}
	return cell
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Geier Toolbox ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/geier simulate <games> <random|rank>")
	fmt.Println("    Run a fast bot-versus-computer match.")
	fmt.Println("  go run ./cmd/geier play [games]")
	fmt.Println("    Play against the bot yourself.")
	fmt.Println("  go run ./cmd/geier stats <file>")
	fmt.Println("    Show a statistics file written at the end of a match.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable detailed AI logic tracing.")
	fmt.Println("  -config <path>     Use another configuration file.")
}

func (c *CLI) printPlayHelp() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Input", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"<number>", "Play the card with that value."},
		{"hand", "Show the cards you still hold."},
		{"quit", "Leave the match."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

// promptForCard is the HumanPlayer's prompt: it loops until the user names a card in hand.
func (c *CLI) promptForCard(pointValue int, hand []int) (int, error) {
	for {
		input, err := c.line.Prompt(fmt.Sprintf("(points %d) your card: ", pointValue))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return 0, errQuit
			}
			return 0, fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		switch strings.ToLower(input) {
		case "quit", "q":
			return 0, errQuit
		case "hand", "h":
			C.Info.Printf("Your hand: %v\n", hand)
			continue
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			C.Warn.Printf("'%s' is not a card value.\n", input)
			continue
		}
		if !contains(hand, value) {
			C.Warn.Printf("You do not hold %d. Your hand: %v\n", value, hand)
			continue
		}
		return value, nil
	}
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
