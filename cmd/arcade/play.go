package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/games/sokoban"
	"github.com/vovakirdan/grid-arcade/internal/platform/gui"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagPack       string
	flagStartLevel int
	flagWindowed   bool
	flagGUI        bool
)

var playCmd = &cobra.Command{
	Use:   "play <game> [W H]",
	Short: "Play a game",
	Long: `Start playing the specified game.

The game fills the terminal (or the screen with --gui). With -w it runs in a
fixed viewport instead: W x H cells in the terminal, W x H pixels in a window
(default 800x600).

Controls:
  Arrows/WASD  - Move
  R            - Restart level (Sokoban)
  P            - Pause (Snake)
  Esc/Q        - Quit

Difficulty options (Snake):
  easy   - 6 moves per second
  normal - 10 moves per second
  hard   - 15 moves per second

Examples:
  arcade play sokoban
  arcade play sokoban --levels ./levels --start-level 3
  arcade play sokoban --pack classic
  arcade play snake --difficulty hard
  arcade play snake -w 40 20
  arcade play snake --gui -w 1024 768`,
	Args: cobra.RangeArgs(1, 3),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Snake speed preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Sokoban level file (overrides config and "+config.EnvLevels+")")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Play an imported Sokoban level pack")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Sokoban level to start from (1-based)")
	playCmd.Flags().BoolVarP(&flagWindowed, "windowed", "w", false, "Use a fixed viewport of W x H instead of the full screen")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a window instead of drawing in the terminal")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	w, h, err := parseViewport(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if w > 0 {
		flagWindowed = true
	}

	cfg := runtimeConfig(w, h)

	if err := prepareGame(gameID); err != nil {
		// Startup errors go to stdout like the game's own messages.
		fmt.Println(err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	state, err := launch(game, cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	reportFinish(game, state)
}

// parseViewport parses the optional W H arguments of play.
func parseViewport(args []string) (int, int, error) {
	switch len(args) {
	case 0:
		return 0, 0, nil
	case 2:
	default:
		return 0, 0, errors.New("viewport needs both W and H")
	}

	w, err := strconv.Atoi(args[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport width %q", args[0])
	}
	h, err := strconv.Atoi(args[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport height %q", args[1])
	}
	return w, h, nil
}

// runtimeConfig builds the config for the chosen platform. A zero w or h
// means the full terminal (TUI) or the platform default (GUI).
func runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if flagGUI {
		cfg.Aspect = core.PixelAspect
		cfg.ScreenW, cfg.ScreenH = w, h
		return cfg
	}

	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = tw, th
	}
	if w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// prepareGame applies CLI settings to a game before it is created.
func prepareGame(gameID string) error {
	switch gameID {
	case "sokoban":
		_, err := prepareSokoban()
		return err
	case "snake":
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := config.LoadSnake(flagConfig); err != nil {
			if flagConfig != "" {
				return err
			}
			logger.Warn("using default snake config", "err", err)
		}
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// prepareSokoban loads the level list, hands it to the game and returns it.
func prepareSokoban() ([]string, error) {
	scfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return nil, err
		}
		logger.Warn("using default sokoban config", "err", err)
		scfg = config.DefaultSokobanConfig()
	}

	defs, source, err := loadLevelDefs(scfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("levels loaded", "source", source, "count", len(defs))

	// Invalid levels are reported in-game; log them here as well.
	if err := sokoban.ValidateLevels(defs); err != nil {
		logger.Warn("level file contains invalid levels", "source", source, "err", err)
	}

	start := scfg.Levels.StartLevel
	if flagStartLevel > 0 {
		start = flagStartLevel
	}
	if start > len(defs) {
		return nil, fmt.Errorf("start level %d out of range (1-%d)", start, len(defs))
	}

	sokoban.SetLevels(defs)
	sokoban.SetAdvanceDelay(scfg.Levels.AdvanceDelayMS)
	sokoban.SetStartLevel(start)
	return defs, nil
}

// loadLevelDefs resolves the level source: --pack, then --levels, then
// ARCADE_LEVELS, then the config's levels.file.
func loadLevelDefs(scfg config.SokobanConfig) ([]string, string, error) {
	if flagPack != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, "", fmt.Errorf("opening level database: %w", err)
		}
		defer store.Close()

		defs, err := store.PackLevels(flagPack)
		if err != nil {
			return nil, "", err
		}
		return defs, "pack " + flagPack, nil
	}

	path := config.StringOr(flagLevels, config.StringOr(env.LevelsFile, scfg.Levels.File))
	defs, err := sokoban.ReadLevelFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("level file %q not found", path)
	}
	if err != nil {
		return nil, "", err
	}
	return defs, path, nil
}

// launch runs a prepared game on the selected platform.
func launch(game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	if flagGUI {
		state, err := gui.Run(game, cfg, gui.Options{Windowed: flagWindowed})
		if err != nil {
			return state, fmt.Errorf("could not open window: %w", err)
		}
		return state, nil
	}

	state, err := tui.Run(game, cfg, tui.Options{Windowed: flagWindowed})
	if err != nil {
		return state, fmt.Errorf("error running game: %w", err)
	}
	return state, nil
}

// reportFinish prints the closing message of a completed level list.
func reportFinish(game registry.Game, state core.GameState) {
	if game.ID() == "sokoban" && state.Finished {
		fmt.Println("All levels completed.")
	}
}
