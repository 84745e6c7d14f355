package digitsum

import "sync"

// base is the radix whose digits are summed.
const base = 10

// Oracle computes digit sums and memoizes them by magnitude.
// The zero value is not usable; call New.
type Oracle struct {
	mu    sync.RWMutex
	cache map[uint64]int
}

// New returns an Oracle with an empty cache.
func New() *Oracle {
	return &Oracle{cache: make(map[uint64]int)}
}

// defaultOracle backs the package-level Sum.
var defaultOracle = New()

// Sum returns the digit sum of |n| using the process-wide default Oracle.
func Sum(n int) int {
	return defaultOracle.Sum(n)
}

// Sum returns the sum of the decimal digits of |n|.
// Never fails; math.MinInt is handled without overflow.
func (o *Oracle) Sum(n int) int {
	return o.sum(magnitude(n))
}

// Len reports how many magnitudes are currently cached.
func (o *Oracle) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.cache)
}

// sum is the recursive, memoized core. Single digits are returned
// directly and never stored.
func (o *Oracle) sum(m uint64) int {
	if m < base {
		return int(m)
	}

	o.mu.RLock()
	s, ok := o.cache[m]
	o.mu.RUnlock()
	if ok {
		return s
	}

	s = int(m%base) + o.sum(m/base)

	o.mu.Lock()
	o.cache[m] = s
	o.mu.Unlock()

	return s
}

// magnitude returns |n| as an unsigned value, valid for math.MinInt too.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}
