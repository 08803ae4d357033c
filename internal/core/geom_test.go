package core

import "testing"

func TestArenaContains(t *testing.T) {
	a := NewArena(10, 10)

	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"inside", Position{X: 3, Y: 3}, true},
		{"origin", Position{X: 0, Y: 0}, true},
		{"top-right corner", Position{X: 9, Y: 9}, true},
		{"right edge (exclusive)", Position{X: 10, Y: 5}, false},
		{"top edge (exclusive)", Position{X: 5, Y: 10}, false},
		{"negative x", Position{X: -1, Y: 3}, false},
		{"negative y", Position{X: 3, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := a.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestPositionStep(t *testing.T) {
	origin := Position{X: 3, Y: 3}

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Position{X: 3, Y: 4}},
		{DirDown, Position{X: 3, Y: 2}},
		{DirRight, Position{X: 4, Y: 3}},
		{DirLeft, Position{X: 2, Y: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got := origin.Step(tc.dir)
			if got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if s := (Position{X: -1, Y: 3}).String(); s != "(-1,3)" {
		t.Errorf("String() = %q, expected %q", s, "(-1,3)")
	}
}
