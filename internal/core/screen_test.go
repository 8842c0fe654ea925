package core

import (
	"strings"
	"testing"
)

// rowText returns the runes of row y as a string.
func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 1, 1, Cell{Rune: '█', Color: ColorInk}},
		{"left of screen", -1, 0, blankCell},
		{"right of screen", 4, 0, blankCell},
		{"above screen", 0, -1, blankCell},
		{"below screen", 0, 2, blankCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 2)
			s.SetColor(tc.x, tc.y, '█', ColorInk)
			if got := s.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColor(0, 0, '•', ColorEye)
	s.SetColor(2, 2, ' ', ColorSky)

	s.Clear()

	for _, p := range [][2]int{{0, 0}, {2, 2}} {
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("cell %v after Clear = %+v, want blank", p, c)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.SetColor(0, 0, '█', ColorInk)
	s.SetColor(9, 5, '▒', ColorCloud)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c.Color != ColorInk {
		t.Errorf("top-left should survive shrinking, got %+v", c)
	}

	s.Resize(12, 8)
	if c := s.GetCell(0, 0); c.Color != ColorInk {
		t.Errorf("top-left should survive growing, got %+v", c)
	}
	if c := s.GetCell(9, 5); c != blankCell {
		t.Errorf("cell cut by the shrink should be blank, got %+v", c)
	}
	if c := s.GetCell(11, 7); c != blankCell {
		t.Errorf("new cells should be blank, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.SetColor(1, 0, '█', ColorInk)

	s.DrawText(1, 0, "GAME")
	s.DrawText(6, 1, "OVER") // Clipped to "OV"

	if got := rowText(s, 0); got != " GAME   " {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(s, 1); got != "      OV" {
		t.Errorf("row 1 = %q", got)
	}
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("text should use the default color, got %+v", c)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(8, 5)
	for y := range s.Height() {
		for x := range s.Width() {
			s.SetColor(x, y, '█', ColorInk)
		}
	}

	r := NewRect(1, 1, 5, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	want := []string{
		"████████",
		"█┌───┐██",
		"█│   │██",
		"█└───┘██",
		"████████",
	}
	for y, row := range want {
		if got := rowText(s, y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}

	if c := s.GetCell(3, 2); c.Color != ColorDefault {
		t.Errorf("box interior should be cleared to the default color, got %+v", c)
	}
	if c := s.GetCell(0, 0); c.Color != ColorInk {
		t.Errorf("cells outside the box should be untouched, got %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColor(0, 0, '█', ColorInk)
	s.SetColor(2, 1, '•', ColorEye)

	if got, want := s.String(), "█  \n  •"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
