package engine

// Block is one piece instance offered in the tray: a catalog shape plus a
// color. The ID only distinguishes otherwise-identical pieces for UI and
// tray bookkeeping; it carries no game meaning and is not persisted.
type Block struct {
	ID    uint64
	Shape *Shape
	Color Color
}

// Generator draws blocks deterministically for the current level.
// Reseeding with the same level always reproduces the same draw sequence.
type Generator struct {
	stream *Stream
	level  int
	nextID uint64
}

// NewGenerator creates a generator seeded for the given level.
func NewGenerator(level int) *Generator {
	g := &Generator{}
	g.SeedLevel(level)
	return g
}

// SeedLevel reseeds the draw stream from the level number alone.
func (g *Generator) SeedLevel(level int) {
	g.stream = NewStream(SeedForLevel(level))
	g.level = level
}

// Level returns the level the generator is currently seeded for.
func (g *Generator) Level() int {
	return g.level
}

// NextBlock draws the next block: a uniform pick from the shapes unlocked at
// the current level and the full color palette. It never fails; an empty
// unlock set (unreachable with the fixed tier table) falls back to a default
// shape and color.
func (g *Generator) NextBlock() Block {
	shapes := UnlockedShapes(g.level)

	shape := defaultShape
	color := ColorRed
	if len(shapes) > 0 {
		shape = shapes[g.stream.Intn(len(shapes))]
		color = Color(g.stream.Intn(NumColors))
	}

	g.nextID++
	return Block{ID: g.nextID, Shape: shape, Color: color}
}
