package digitsum_test

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/digitsum"
)

// literalSum adds the decimal digits of the string rendering of n.
func literalSum(n int) int {
	s := strconv.Itoa(n)
	total := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			total += int(r - '0')
		}
	}

	return total
}

// TestSum_Table checks hand-picked values including the single-digit base case.
func TestSum_Table(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{7, 7},
		{9, 9},
		{10, 1},
		{19, 10},
		{99, 18},
		{100, 1},
		{1234, 10},
		{-1234, 10},
		{-5, 5},
		{999999, 54},
	}
	o := digitsum.New()
	for _, tc := range cases {
		assert.Equalf(t, tc.want, o.Sum(tc.n), "Sum(%d)", tc.n)
	}
}

// TestSum_MatchesLiteral compares the oracle against digit-by-digit addition
// of the decimal rendering, for both signs.
func TestSum_MatchesLiteral(t *testing.T) {
	o := digitsum.New()
	for n := 0; n <= 5000; n++ {
		want := literalSum(n)
		if got := o.Sum(n); got != want {
			t.Fatalf("Sum(%d) = %d; want %d", n, got, want)
		}
		if got := o.Sum(-n); got != want {
			t.Fatalf("Sum(%d) = %d; want %d", -n, got, want)
		}
	}
}

// TestSum_Extremes covers the int boundaries.
func TestSum_Extremes(t *testing.T) {
	o := digitsum.New()
	assert.Equal(t, literalSum(math.MaxInt), o.Sum(math.MaxInt))
	// |MinInt| = MaxInt+1; its rendering without the sign has the same digits.
	assert.Equal(t, literalSum(math.MinInt), o.Sum(math.MinInt))
}

// TestSum_CacheKeyedByMagnitude verifies n and -n share one cache entry
// and that single digits are never cached.
func TestSum_CacheKeyedByMagnitude(t *testing.T) {
	o := digitsum.New()
	require.Equal(t, 0, o.Len())

	o.Sum(7)
	assert.Equal(t, 0, o.Len(), "single digit must not be cached")

	o.Sum(123) // caches 123 and 12
	assert.Equal(t, 2, o.Len())

	o.Sum(-123)
	assert.Equal(t, 2, o.Len(), "negative query must reuse the positive entry")
}

// TestSum_PackageDefault exercises the package-level helper.
func TestSum_PackageDefault(t *testing.T) {
	assert.Equal(t, 18, digitsum.Sum(99))
	assert.Equal(t, 18, digitsum.Sum(-99))
}

// TestSum_ConcurrentSafety shares one oracle across goroutines.
func TestSum_ConcurrentSafety(t *testing.T) {
	o := digitsum.New()
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for n := offset; n < 2000; n += 8 {
				if got, want := o.Sum(n), literalSum(n); got != want {
					errs <- strconv.Itoa(n)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for n := range errs {
		t.Errorf("concurrent mismatch at %s", n)
	}
}
