package sokoban

import (
	"errors"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func mustParse(t *testing.T, def string) *Level {
	t.Helper()
	lvl, err := ParseLevel(def)
	if err != nil {
		t.Fatalf("ParseLevel(%q): %v", def, err)
	}
	return lvl
}

func TestParseLevelGoalCount(t *testing.T) {
	tests := []struct {
		name      string
		def       string
		goals     int
		remaining int
		w, h      int
		player    core.Point
	}{
		{"one goal", "#####|#@$.#|#####", 1, 1, 5, 3, core.Pt(1, 1)},
		{"all goal kinds", "#&*.#", 3, 2, 5, 1, core.Pt(1, 0)},
		{"covered only", "#@*#", 1, 0, 4, 1, core.Pt(1, 0)},
		{"no goals", "#@ #", 0, 0, 4, 1, core.Pt(1, 0)},
		{"ragged rows", "###|#@|#####", 0, 0, 5, 3, core.Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := mustParse(t, tt.def)
			if lvl.GoalCount() != tt.goals {
				t.Errorf("GoalCount() = %d, want %d", lvl.GoalCount(), tt.goals)
			}
			if lvl.Remaining() != tt.remaining {
				t.Errorf("Remaining() = %d, want %d", lvl.Remaining(), tt.remaining)
			}
			if lvl.Width() != tt.w || lvl.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", lvl.Width(), lvl.Height(), tt.w, tt.h)
			}
			if lvl.Player() != tt.player {
				t.Errorf("Player() = %v, want %v", lvl.Player(), tt.player)
			}
		})
	}
}

func TestParseLevelCells(t *testing.T) {
	lvl := mustParse(t, "#&*|$.")

	checks := []struct {
		p    core.Point
		want Cell
	}{
		{core.Pt(0, 0), Cell{Kind: KindWall}},
		{core.Pt(1, 0), Cell{Goal: true}},
		{core.Pt(2, 0), Cell{Goal: true, Box: true}},
		{core.Pt(0, 1), Cell{Box: true}},
		{core.Pt(1, 1), Cell{Goal: true}},
		{core.Pt(2, 1), Cell{}}, // padding
	}
	for _, c := range checks {
		if got := lvl.At(c.p); got != c.want {
			t.Errorf("At(%v) = %+v, want %+v", c.p, got, c.want)
		}
	}

	if !lvl.At(core.Pt(2, 0)).OnGoal() {
		t.Error("box on goal should report OnGoal")
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		def  string
		want error
	}{
		{"", ErrEmptyLevel},
		{"||", ErrEmptyLevel},
		{"#.$#", ErrNoPlayer},
	}
	for _, tt := range tests {
		if _, err := ParseLevel(tt.def); !errors.Is(err, tt.want) {
			t.Errorf("ParseLevel(%q) error = %v, want %v", tt.def, err, tt.want)
		}
	}
}

func TestAtOutOfBoundsIsWall(t *testing.T) {
	lvl := mustParse(t, "@")
	for _, p := range []core.Point{core.Pt(-1, 0), core.Pt(1, 0), core.Pt(0, -1), core.Pt(0, 1)} {
		if lvl.At(p).Kind != KindWall {
			t.Errorf("At(%v) should read as wall", p)
		}
	}
}

func TestLevelString(t *testing.T) {
	lvl := mustParse(t, "#####|#@$.#|#&* #|#####")
	want := "#####\n#@$.#\n#&* #\n#####"
	if got := lvl.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
