// Package ids flags "invalid" numeric IDs inside closed integer
// ranges and sums them.
//
// Two independent validity rules exist:
//
//   - Doubled: an ID is a seed's digit pattern written twice in a row
//     (for example 1212 from seed 12). These are generated sparsely
//     from seeds, so cost depends on the seed bound, not range width.
//   - Repeated: an ID is any shorter digit chunk repeated two or more
//     times (121212, 1111, 99). Every value in every range is tested,
//     so cost is proportional to the total range width. Intentional
//     brute force; keep ranges small.
package ids
