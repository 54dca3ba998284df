package input

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		in   Snapshot
		want int
	}{
		{"idle", Snapshot{}, 0},
		{"left", Snapshot{Left: true}, -1},
		{"right", Snapshot{Right: true}, 1},
		{"both cancel", Snapshot{Left: true, Right: true}, 0},
		{"fire does not move", Snapshot{Fire: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Direction(); got != tt.want {
				t.Errorf("Expected direction %d, got %d", tt.want, got)
			}
		})
	}
}
