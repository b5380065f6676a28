package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var listHeaderStyle = lipgloss.NewStyle().Bold(true)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in the arcade and how to start them.`,
	Run: func(_ *cobra.Command, _ []string) {
		printGames(os.Stdout, registry.List())
	},
}

// printGames writes the game table with an ID and a Title column.
func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintln(w, listHeaderStyle.Render("Available games:"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' in the terminal, or add --gui for a window.")
}
