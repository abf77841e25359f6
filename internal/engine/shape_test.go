package engine

import "testing"

func TestCatalogNormalized(t *testing.T) {
	for _, s := range AllShapes() {
		if len(s.Offsets) == 0 {
			t.Errorf("shape %q has no cells", s.Name)
			continue
		}
		touchesX, touchesY := false, false
		for _, off := range s.Offsets {
			if off.X < 0 || off.Y < 0 {
				t.Errorf("shape %q has negative offset %v", s.Name, off)
			}
			if off.X >= s.W || off.Y >= s.H {
				t.Errorf("shape %q offset %v outside bounding box %dx%d", s.Name, off, s.W, s.H)
			}
			if off.X == 0 {
				touchesX = true
			}
			if off.Y == 0 {
				touchesY = true
			}
		}
		if !touchesX || !touchesY {
			t.Errorf("shape %q is not anchored to its top-left bounding box", s.Name)
		}
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range AllShapes() {
		if seen[s.Name] {
			t.Errorf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestUnlockTiers(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 15},
		{2, 16},
		{3, 16},
		{4, 17},
		{5, 17},
		{6, 19},
		{10, 19},
		{11, 21},
		{20, 21},
		{21, 23},
		{50, 23},
		{51, 24},
		{100, 24},
	}

	for _, tt := range tests {
		if got := len(UnlockedShapes(tt.level)); got != tt.want {
			t.Errorf("UnlockedShapes(%d) has %d shapes, want %d", tt.level, got, tt.want)
		}
	}
}

func TestUnlockTiersAreCatalogPrefixes(t *testing.T) {
	all := AllShapes()
	for _, level := range []int{1, 2, 4, 6, 11, 21, 51} {
		unlocked := UnlockedShapes(level)
		for i, s := range unlocked {
			if all[i] != s {
				t.Fatalf("UnlockedShapes(%d)[%d] = %q, want catalog order preserved", level, i, s.Name)
			}
		}
	}
}

func TestUnlockLevelMatchesTiers(t *testing.T) {
	for i := range AllShapes() {
		level := UnlockLevel(i)
		if i >= len(UnlockedShapes(level)) {
			t.Errorf("shape %d not unlocked at its own UnlockLevel %d", i, level)
		}
		if level > 1 && i < len(UnlockedShapes(level-1)) {
			t.Errorf("shape %d already unlocked below its UnlockLevel %d", i, level)
		}
	}
}

func TestShapeByName(t *testing.T) {
	s, ok := ShapeByName("Plus")
	if !ok {
		t.Fatal("Plus should be in the catalog")
	}
	if s.Size() != 5 {
		t.Errorf("Plus has %d cells, want 5", s.Size())
	}
	if _, ok := ShapeByName("Nope"); ok {
		t.Error("unknown name should not resolve")
	}
}
