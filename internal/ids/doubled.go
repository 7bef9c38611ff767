package ids

// SumDoubled sums every ID that is a seed's digit pattern written
// twice (seed 12 -> 1212) and falls inside one of the ranges. Each
// candidate is counted at most once: the range scan stops at the
// first containing range.
func SumDoubled(ranges []Range) uint64 {
	limit := seedLimit(maxEnd(ranges))

	var total uint64
	for seed := uint64(1); seed < limit; seed++ {
		candidate := fromSeed(seed)
		for _, r := range ranges {
			if r.Contains(candidate) {
				total += candidate
				break
			}
		}
	}
	return total
}

// fromSeed concatenates a seed's digits with themselves:
// seed * (10^digits(seed) + 1).
func fromSeed(seed uint64) uint64 {
	return seed * (pow10(digitCount(seed)) + 1)
}

// seedLimit bounds the seed search. A doubled ID has twice the seed's
// digit count, so a useful seed has at most half (rounded up) the
// digits of the largest range endpoint.
func seedLimit(max uint64) uint64 {
	seedDigits := (digitCount(max) + 1) / 2
	return pow10(seedDigits)
}
