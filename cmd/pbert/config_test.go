package main

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/pbert/board"
)

func TestLoadConfigFromOverrides(t *testing.T) {
	tests := []struct {
		name string
		o    gridOverrides
		want board.Topology
	}{
		{"defaults", gridOverrides{}, board.Square(4)},
		{"flat size", gridOverrides{shape: "flat", size: 6}, board.Flat(6)},
		{"rect from flags", gridOverrides{shape: "rect", width: 5, height: 3}, board.Rect(5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfigFrom("", tt.o)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			topo, err := cfg.Topology()
			if err != nil {
				t.Fatalf("Unexpected topology error: %v", err)
			}
			if topo != tt.want {
				t.Errorf("Topology %v, want %v", topo, tt.want)
			}
		})
	}
}

func TestLoadConfigFromRejects(t *testing.T) {
	if _, err := loadConfigFrom("", gridOverrides{shape: "rect"}); err == nil {
		t.Error("Expected rect without width and height to fail")
	}
	_, err := loadConfigFrom("", gridOverrides{size: math.MaxInt})
	if !errors.Is(err, board.ErrGridTooLarge) {
		t.Errorf("Expected ErrGridTooLarge for an oversized grid, got %v", err)
	}
}
