package engine

// Shape is a named polyomino footprint: a set of cell offsets relative to the
// shape's top-left-most cell. Offsets are non-negative and shapes are shared
// immutable values; callers must never mutate a catalog entry.
type Shape struct {
	Name    string
	Offsets []Coord
	W, H    int // Bounding box of the footprint
}

// Size returns the number of cells in the footprint.
func (s *Shape) Size() int {
	return len(s.Offsets)
}

// newShape builds a shape from ASCII rows, where '#' marks a filled cell.
// Rows are parsed top to bottom, so offsets come out normalized.
func newShape(name string, rows ...string) *Shape {
	s := &Shape{Name: name, H: len(rows)}
	for y, row := range rows {
		if len(row) > s.W {
			s.W = len(row)
		}
		for x, ch := range row {
			if ch == '#' {
				s.Offsets = append(s.Offsets, C(x, y))
			}
		}
	}
	return s
}

// catalog is the fixed ordered shape table. Tier boundaries index into this
// slice, so the order is part of the generator's determinism contract and
// must never change.
var catalog = []*Shape{
	// Base set, available from level 1.
	newShape("Bar2", "##"),
	newShape("Bar2V", "#", "#"),
	newShape("Bar3", "###"),
	newShape("Bar3V", "#", "#", "#"),
	newShape("Bar4", "####"),
	newShape("Bar4V", "#", "#", "#", "#"),
	newShape("Square", "##", "##"),
	newShape("L", "#.", "#.", "##"),
	newShape("L90", "###", "#.."),
	newShape("L180", "##", ".#", ".#"),
	newShape("L270", "..#", "###"),
	newShape("T", "###", ".#."),
	newShape("T90", ".#", "##", ".#"),
	newShape("T180", ".#.", "###"),
	newShape("T270", "#.", "##", "#."),
	// Unlocked at level 2.
	newShape("Z", "##.", ".##"),
	// Unlocked at level 4.
	newShape("Plus", ".#.", "###", ".#."),
	// Unlocked at level 6.
	newShape("S", ".##", "##."),
	newShape("Bar5", "#####"),
	// Unlocked at level 11.
	newShape("Square3", "###", "###", "###"),
	newShape("Corner", "#.", "##"),
	// Unlocked at level 21.
	newShape("U", "#.#", "###"),
	newShape("Bar5V", "#", "#", "#", "#", "#"),
	// Unlocked above level 50.
	newShape("H", "#.#", "###", "#.#"),
}

// shapesByName indexes the catalog for snapshot restore.
var shapesByName = func() map[string]*Shape {
	m := make(map[string]*Shape, len(catalog))
	for _, s := range catalog {
		m[s.Name] = s
	}
	return m
}()

// defaultShape is the fallback piece handed out if a tier computation ever
// yields an empty unlock set. The tray must never be unrecoverably empty.
var defaultShape = catalog[0]

// unlockedCount returns how many catalog entries are available at the given
// level. The base set holds 15 shapes; higher tiers extend it in catalog
// order until everything is unlocked above level 50.
func unlockedCount(level int) int {
	switch {
	case level <= 1:
		return 15
	case level <= 3:
		return 16 // +Z
	case level <= 5:
		return 17 // +Plus
	case level <= 10:
		return 19 // +S, +Bar5
	case level <= 20:
		return 21 // +Square3, +Corner
	case level <= 50:
		return 23 // +U, +Bar5V
	default:
		return len(catalog)
	}
}

// UnlockedShapes returns the shapes available at the given level, in fixed
// catalog order. The returned slice shares backing storage with the catalog
// and must be treated as read-only.
func UnlockedShapes(level int) []*Shape {
	n := unlockedCount(level)
	if n > len(catalog) {
		n = len(catalog)
	}
	return catalog[:n]
}

// AllShapes returns the full catalog in order.
func AllShapes() []*Shape {
	return catalog
}

// ShapeByName looks up a catalog shape by its name.
func ShapeByName(name string) (*Shape, bool) {
	s, ok := shapesByName[name]
	return s, ok
}

// UnlockLevel returns the lowest level at which the shape at the given
// catalog index is available.
func UnlockLevel(index int) int {
	switch {
	case index < 15:
		return 1
	case index < 16:
		return 2
	case index < 17:
		return 4
	case index < 19:
		return 6
	case index < 21:
		return 11
	case index < 23:
		return 21
	default:
		return 51
	}
}
