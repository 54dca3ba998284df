package hud

import (
	"testing"

	"go-alien-shooter/internal/component"
)

func TestLinesWhilePlaying(t *testing.T) {
	lines := Lines(component.Session{Score: 40, Lives: 2, Level: 3, Phase: component.Playing})
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	want := []Line{
		{Text: "Score: 40", X: 10, Y: 10, Anchor: TopLeft, Size: Normal},
		{Text: "Lives: 2", X: 680, Y: 10, Anchor: TopLeft, Size: Normal},
		{Text: "Level: 3", X: 400, Y: 10, Anchor: Center, Size: Normal},
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}

func TestLinesOnGameOver(t *testing.T) {
	lines := Lines(component.Session{Score: 250, Lives: 0, Level: 5, Phase: component.GameOver})
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(lines))
	}
	title, score, prompt := lines[3], lines[4], lines[5]
	if title.Text != "GAME OVER" || title.Y != 260 || title.Size != Title {
		t.Errorf("Unexpected title %+v", title)
	}
	if score.Text != "Final Score: 250" || score.Y != 320 {
		t.Errorf("Unexpected score line %+v", score)
	}
	if prompt.Text != "Press R to restart or close window to quit" || prompt.Y != 360 {
		t.Errorf("Unexpected prompt %+v", prompt)
	}
	for _, l := range lines[3:] {
		if l.Anchor != Center || l.X != 400 {
			t.Errorf("Expected centered line at x=400, got %+v", l)
		}
	}
}

func TestSizePoints(t *testing.T) {
	tests := map[Size]float64{Small: 20, Normal: 22, Large: 28, Title: 64}
	for size, want := range tests {
		if got := size.Points(); got != want {
			t.Errorf("Size %d: expected %v points, got %v", size, want, got)
		}
	}
}

func TestRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := Roman(tt.n); got != tt.want {
			t.Errorf("Roman(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}
