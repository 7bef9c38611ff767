// Package dial tracks a circular combination dial driven by a script
// of rotation commands and counts how often it hits zero.
//
// The dial has 100 click positions and powers on at position 50. Two
// counting modes exist:
//
//   - Landings: a hit is a rotation that ends exactly on zero.
//   - Crossings: every pass through zero during a rotation counts,
//     computed in closed form rather than by stepping single clicks.
//
// Both counters are pure functions of the parsed script, so identical
// input always yields identical output.
package dial
