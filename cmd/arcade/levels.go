package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/games/sokoban"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var flagPackName string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage Sokoban level packs",
	Long: `Import level files into the level database and browse them.

A level file has one board row per line; a line holding only "," ends a level.

Examples:
  arcade levels import ./levels --name classic
  arcade levels list
  arcade levels show classic
  arcade levels delete classic
  arcade play sokoban --pack classic`,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a level file as a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsImport,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported packs",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <pack>",
	Short: "Print the levels of a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsShow,
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <pack>",
	Short: "Delete a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsDelete,
}

func init() {
	levelsImportCmd.Flags().StringVar(&flagPackName, "name", "", "Pack name (default: file name without extension)")

	levelsCmd.AddCommand(levelsImportCmd)
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsDeleteCmd)
}

// openStore opens the level database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runLevelsImport(_ *cobra.Command, args []string) {
	path := args[0]

	defs, err := sokoban.ReadLevelFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sokoban.ValidateLevels(defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		os.Exit(1)
	}

	name := flagPackName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store := openStore()
	defer store.Close()

	pack, err := store.ImportPack(name, path, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing levels: %v\n", err)
		os.Exit(1)
	}

	logger.Info("pack imported", "name", pack.Name, "levels", pack.Levels, "id", pack.ID)
	fmt.Printf("Imported %d levels as %q.\n", pack.Levels, pack.Name)
	fmt.Printf("Run 'arcade play sokoban --pack %s' to play them.\n", pack.Name)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	packs, err := store.Packs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving packs: %v\n", err)
		return
	}

	if len(packs) == 0 {
		fmt.Println("No level packs imported yet.")
		fmt.Println()
		fmt.Println("Run 'arcade levels import <file>' to add one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "Name", "Levels", "Imported", "Source")
	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "----", "------", "--------", "------")

	// Print packs
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %-16s  %s\n", maxNameLen, p.Name, p.Levels, p.CreatedAt.Format("2006-01-02 15:04"), p.Source)
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	defs, err := store.PackLevels(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, def := range defs {
		fmt.Printf("Level %d\n", i+1)
		lvl, err := sokoban.ParseLevel(def)
		if err != nil {
			fmt.Printf("  invalid: %v\n\n", err)
			continue
		}
		fmt.Printf("%s\n(%dx%d, %d goals)\n\n", lvl, lvl.Width(), lvl.Height(), lvl.GoalCount())
	}
}

func runLevelsDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeletePack(args[0]); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted pack %q.\n", args[0])
}
