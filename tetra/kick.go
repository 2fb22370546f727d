package tetra

// KickIndex selects the kick table row for a rotation that arrives at
// rotation (the target index) turning in direction. rows is the table size.
func KickIndex(rotation, direction, rows int) int {
	index := rotation * 2
	if direction < 0 {
		index--
	}
	return WrapIndex(index, rows)
}

// ResolveKick returns the first candidate translation accepted by fits along
// with its position in candidates. ok is false when every candidate fails.
func ResolveKick(candidates []Vec, fits func(Vec) bool) (kick Vec, index int, ok bool) {
	for i, candidate := range candidates {
		if fits(candidate) {
			return candidate, i, true
		}
	}
	return Vec{}, -1, false
}
