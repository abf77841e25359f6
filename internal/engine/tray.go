package engine

// TrayCapacity is the number of pieces offered at once.
const TrayCapacity = 3

// Tray is the ordered queue of pending pieces. It holds at most TrayCapacity
// blocks and is refilled back to capacity after every placement while the
// game is running.
type Tray struct {
	slots []Block
}

// NewTray creates an empty tray.
func NewTray() *Tray {
	return &Tray{slots: make([]Block, 0, TrayCapacity)}
}

// Len returns the number of pieces currently offered.
func (t *Tray) Len() int {
	return len(t.slots)
}

// At returns the block in the given slot, or false if the slot is empty.
func (t *Tray) At(i int) (Block, bool) {
	if i < 0 || i >= len(t.slots) {
		return Block{}, false
	}
	return t.slots[i], true
}

// Blocks returns the offered pieces in order. The slice is a copy.
func (t *Tray) Blocks() []Block {
	out := make([]Block, len(t.slots))
	copy(out, t.slots)
	return out
}

// Remove takes the block out of the given slot, shifting later slots down.
func (t *Tray) Remove(i int) {
	if i < 0 || i >= len(t.slots) {
		return
	}
	t.slots = append(t.slots[:i], t.slots[i+1:]...)
}

// Refill draws from the generator until the tray is at capacity.
func (t *Tray) Refill(gen *Generator) {
	for len(t.slots) < TrayCapacity {
		t.slots = append(t.slots, gen.NextBlock())
	}
}

// Clear empties the tray.
func (t *Tray) Clear() {
	t.slots = t.slots[:0]
}

// setBlocks replaces the tray contents, used by undo restore and snapshot
// loading.
func (t *Tray) setBlocks(blocks []Block) {
	t.slots = t.slots[:0]
	t.slots = append(t.slots, blocks...)
}
