package tetra

// Project finds where cells would come to rest if dropped straight down from
// anchor. The search walks from the anchor row down to bottom and stops at the
// first row that does not fit. ok is false when the anchor itself does not fit.
// Nothing is mutated; cells and anchor are copies.
func Project(f Fitter, cells [4]Vec, anchor Vec, bottom int) (Vec, bool) {
	landing := anchor
	found := false

	pos := anchor
	for row := anchor.Y; row >= bottom; row-- {
		pos.Y = row
		if !f.Fits(cells, pos) {
			break
		}
		landing = pos
		found = true
	}

	return landing, found
}
