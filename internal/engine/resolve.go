package engine

// Scoring constants for a resolve pass.
const (
	lineClearScore  = 100  // Any fully filled row or column
	monoLineScore   = 500  // Cleared line whose cells share one color
	multiMatchScore = 1000 // Per monochrome line when two or more clear together
	groupBonusScore = 200  // Per contiguous group of at least GroupBonusSize cells
)

// GroupBonusSize is the minimum flood-fill group size that scores a bonus.
const GroupBonusSize = 10

// clearResult describes the line-clear portion of a resolve pass.
type clearResult struct {
	Rows  []int   // Cleared row indices
	Cols  []int   // Cleared column indices
	Cells []Coord // Union of all cleared line cells
	Score int     // Base + monochrome + multi-match total
}

// Cleared returns true if at least one line was cleared.
func (r clearResult) Cleared() bool {
	return len(r.Rows) > 0 || len(r.Cols) > 0
}

// rowIsMono returns true if every cell of a full row shares one color.
func rowIsMono(b *Board, y int) bool {
	first := b.Cells[y*b.N].Color
	for x := 1; x < b.N; x++ {
		if b.Cells[y*b.N+x].Color != first {
			return false
		}
	}
	return true
}

// colIsMono returns true if every cell of a full column shares one color.
func colIsMono(b *Board, x int) bool {
	first := b.Cells[x].Color
	for y := 1; y < b.N; y++ {
		if b.Cells[y*b.N+x].Color != first {
			return false
		}
	}
	return true
}

// resolveClears scans all rows and all columns of the committed board,
// clears every full line and totals the line scores. Fullness and
// monochrome status are judged on the pre-clear board for rows and columns
// alike, so a row and a column that fill up together both count and the
// total is independent of clear order. Rows are cleared before columns.
func resolveClears(b *Board) clearResult {
	var res clearResult
	monoCount := 0

	for y := 0; y < b.N; y++ {
		if !b.IsRowFull(y) {
			continue
		}
		res.Rows = append(res.Rows, y)
		res.Score += lineClearScore
		if rowIsMono(b, y) {
			res.Score += monoLineScore
			monoCount++
		}
	}
	for x := 0; x < b.N; x++ {
		if !b.IsColFull(x) {
			continue
		}
		res.Cols = append(res.Cols, x)
		res.Score += lineClearScore
		if colIsMono(b, x) {
			res.Score += monoLineScore
			monoCount++
		}
	}

	// One extra bonus per pass, not per pair.
	if monoCount >= 2 {
		res.Score += monoCount * multiMatchScore
	}

	seen := make(map[Coord]bool)
	for _, y := range res.Rows {
		for x := 0; x < b.N; x++ {
			c := C(x, y)
			if !seen[c] {
				seen[c] = true
				res.Cells = append(res.Cells, c)
			}
		}
		b.ClearRow(y)
	}
	for _, x := range res.Cols {
		for y := 0; y < b.N; y++ {
			c := C(x, y)
			if !seen[c] {
				seen[c] = true
				res.Cells = append(res.Cells, c)
			}
		}
		b.ClearCol(x)
	}

	return res
}

// scanGroups flood-fills the board with 4-directional adjacency, ignoring
// color, and returns the number of contiguous groups of at least
// GroupBonusSize cells together with their total bonus. The scan never
// clears cells; it only scores.
func scanGroups(b *Board) (groups, score int) {
	visited := make([]bool, len(b.Cells))
	stack := make([]Coord, 0, len(b.Cells))

	for y := 0; y < b.N; y++ {
		for x := 0; x < b.N; x++ {
			start := C(x, y)
			idx := b.index(start)
			if visited[idx] || !b.Cells[idx].Filled {
				continue
			}

			size := 0
			stack = append(stack[:0], start)
			visited[idx] = true
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				size++
				for _, n := range [4]Coord{c.Add(1, 0), c.Add(-1, 0), c.Add(0, 1), c.Add(0, -1)} {
					if !b.InBounds(n) {
						continue
					}
					ni := b.index(n)
					if visited[ni] || !b.Cells[ni].Filled {
						continue
					}
					visited[ni] = true
					stack = append(stack, n)
				}
			}

			if size >= GroupBonusSize {
				groups++
				score += groupBonusScore
			}
		}
	}

	return groups, score
}
