package sokoban

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LevelSentinel is the line that terminates a level in a level file.
const LevelSentinel = ","

// ErrNoLevels is returned when a level file holds no level definitions.
var ErrNoLevels = errors.New("sokoban: no levels")

// ParseLevelList reads a level file: one level row per line, each level
// closed by a line holding only LevelSentinel. It returns the flattened
// definitions with rows joined by RowSeparator. A final level without a
// sentinel is kept.
func ParseLevelList(r io.Reader) ([]string, error) {
	var (
		defs []string
		rows []string
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == LevelSentinel {
			defs = append(defs, strings.Join(rows, RowSeparator))
			rows = rows[:0]
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sokoban: reading levels: %w", err)
	}

	if strings.TrimSpace(strings.Join(rows, "")) != "" {
		log.Warn("level file ends without a sentinel; keeping last level", "level", len(defs)+1)
		defs = append(defs, strings.Join(rows, RowSeparator))
	}

	if len(defs) == 0 {
		return nil, ErrNoLevels
	}
	return defs, nil
}

// ReadLevelFile opens path and parses it with ParseLevelList.
// A missing file yields an error wrapping fs.ErrNotExist.
func ReadLevelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sokoban: opening level file: %w", err)
	}
	defer f.Close()

	defs, err := ParseLevelList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// ValidateLevels parses every definition and reports the first invalid one.
func ValidateLevels(defs []string) error {
	for i, def := range defs {
		if _, err := ParseLevel(def); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}
