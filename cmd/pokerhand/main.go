package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/poker"
)

type CLI struct {
	HandA   string `arg:"" name:"hand-a" help:"The first player's hand (e.g. 'aq2*2')"`
	HandB   string `arg:"" name:"hand-b" help:"The second player's hand"`
	Verbose bool   `short:"v" help:"Show a styled breakdown of both hands"`
	Debug   bool   `help:"Enable debug logging"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Determine the winning poker hand."))

	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	a, err := poker.New(cli.HandA)
	if err != nil {
		log.Fatal("Invalid hand", "error", err)
	}
	b, err := poker.New(cli.HandB)
	if err != nil {
		log.Fatal("Invalid hand", "error", err)
	}

	outcome := poker.Compare(a, b)

	log.Debug("Compared hands",
		"handA", a, "categoryA", a.Category(), "tiebreakA", symbols(a.Tiebreak()),
		"handB", b, "categoryB", b.Category(), "tiebreakB", symbols(b.Tiebreak()),
		"outcome", outcome)

	if cli.Verbose {
		displayBreakdown(a, b, outcome)
	}

	fmt.Println(formatResult(a, b, outcome))
	ctx.Exit(0)
}

// formatResult renders the one-line result: both categories and the outcome
// code ("0" hand A wins, "1" hand B wins, "01" tie)
func formatResult(a, b *poker.Hand, outcome poker.Outcome) string {
	return fmt.Sprintf("%s, %s, %s", a.Category(), b.Category(), outcome)
}

func displayBreakdown(a, b *poker.Hand, outcome poker.Outcome) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("tiebreak"))

	for _, h := range []*poker.Hand{a, b} {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(h.String()),
			categoryStyle.Render(h.Category().String()),
			symbols(h.Tiebreak()))
	}
	w.Flush()

	switch outcome {
	case poker.HandAWins:
		fmt.Printf("%s\n\n", winStyle.Render(fmt.Sprintf("%s wins", a)))
	case poker.HandBWins:
		fmt.Printf("%s\n\n", winStyle.Render(fmt.Sprintf("%s wins", b)))
	default:
		fmt.Printf("%s\n\n", tieStyle.Render("tie"))
	}
}

func symbols(ranks []poker.Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
