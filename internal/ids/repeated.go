package ids

// SumRepeated sums every value in every range whose decimal form is a
// shorter digit chunk repeated two or more times. Values are
// enumerated one by one, so the cost is the total width of the
// ranges. A value invalid at several chunk lengths is still counted
// once.
func SumRepeated(ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		for v := r.Start; v <= r.End; v++ {
			if IsRepeated(v) {
				total += v
			}
		}
	}
	return total
}

// IsRepeated reports whether v's decimal representation is an exact
// repetition of one of its leading digit chunks.
func IsRepeated(v uint64) bool {
	total := digitCount(v)
	for chunk := 1; chunk <= total/2; chunk++ {
		if total%chunk != 0 {
			continue
		}
		if repeatsTo(v, total, chunk) {
			return true
		}
	}
	return false
}

// repeatsTo checks one chunk length: take the leading chunk digits as
// the seed and rebuild the value by concatenating the seed
// total/chunk times. A match means every chunk equals the first.
func repeatsTo(v uint64, total, chunk int) bool {
	seed := v / pow10(total-chunk)
	base := pow10(chunk)

	var acc uint64
	for i := 0; i < total/chunk; i++ {
		acc = acc*base + seed
	}
	return acc == v
}
