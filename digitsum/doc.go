// Package digitsum provides a memoized decimal digit-sum oracle.
//
// What
//
//   - Sum(n) returns the sum of the base-10 digits of |n|.
//   - Results for n ≥ 10 are cached, keyed by magnitude, so Sum(n) == Sum(-n)
//     hits the same entry.
//   - An Oracle is safe for concurrent use; the function is pure, so one
//     Oracle may be shared by several independent searches.
//
// Why
//
//   - The lattice search classifies each point by digitSum(x)+digitSum(y).
//     Neighbouring points share coordinates, so the same magnitudes are
//     queried over and over.
//
// Complexity
//
//   - First query of n: O(log10 n) time, O(log10 n) new cache entries.
//   - Repeated query: O(1) amortized.
//   - Memory grows with the largest magnitude queried and is never evicted.
//
// Usage
//
//	o := digitsum.New()
//	o.Sum(1234)  // 10
//	o.Sum(-1234) // 10, served from cache
//
//	digitsum.Sum(99) // 18, process-wide default Oracle
package digitsum
