package snake

import (
	"errors"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}
	for _, tc := range tests {
		dx, dy := tc.d.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"DOWN", DirDown},
		{" Left ", DirLeft},
		{"right", DirRight},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q) = %v, %v; expected %v", tc.in, got, err, tc.want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(north) error = %v, expected ErrInvalidDirection", err)
	}
}

func TestDirectionText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("left")); err != nil || d != DirLeft {
		t.Errorf("UnmarshalText(left) = %v, %v", d, err)
	}
	text, err := DirUp.MarshalText()
	if err != nil || string(text) != "up" {
		t.Errorf("MarshalText() = %q, %v; expected \"up\"", text, err)
	}
	if _, err := Direction(0).MarshalText(); err == nil {
		t.Error("MarshalText on zero direction should fail")
	}
}
