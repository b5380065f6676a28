package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/sokoban"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Tab opens the imported Sokoban level packs.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Level packs
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./levels.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db) and the game
	// flags shared with play.
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Snake speed preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagLevels, "levels", "", "Sokoban level file")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open level pack storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open level database", "err", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		gameID := menuResult.GameID
		flagPack = ""

		// Check if user wants the level pack browser
		if menuResult.WantsPacks {
			var lister tui.PackLister
			if store != nil {
				lister = store
			}
			packs, pErr := tui.RunPacks(lister, cfg.ScreenW, cfg.ScreenH)
			if pErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pErr)
			}
			if packs.Pack == "" {
				if packs.GoBack {
					continue // Back to menu
				}
				break // User quit from the browser
			}
			flagPack = packs.Pack
			gameID = "sokoban"
		}

		if gameID == "" {
			break
		}

		if !setupFromMenu(gameID, cfg) {
			continue
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		// Run the game
		state, err := tui.Run(game, cfg, tui.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		reportFinish(game, state)

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// setupFromMenu prepares a game picked in the menu. Sokoban first asks for
// a start level. Returns false when the user backed out or setup failed.
func setupFromMenu(gameID string, cfg core.RuntimeConfig) bool {
	if gameID != "sokoban" {
		if err := prepareGame(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		return true
	}

	defs, err := prepareSokoban()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	selection, err := tui.RunSokobanLevelSelector(defs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	// User pressed back or quit
	if selection == nil {
		return false
	}

	// Apply selection
	if selection.Level > 0 {
		sokoban.SetStartLevel(selection.Level)
	}
	return true
}
