package shamir

import "iter"

// Combinations yields every strictly increasing k-length index sequence
// drawn from [0, n), in lexicographic order. Each yielded slice is owned by
// the caller. The sequence is empty when k > n or k < 0, and holds one
// empty combination when k == 0. It may be ranged over any number of times.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			out := make([]int, k)
			copy(out, idx)
			if !yield(out) {
				return
			}

			// Advance the rightmost position that still has room.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Binomial returns the number of k-combinations of n items, or 0 when
// k is out of range. The result saturates at the maximum int.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	const maxInt = int(^uint(0) >> 1)
	c := 1
	for i := 1; i <= k; i++ {
		// c*(n-k+i) is divisible by i at every step.
		if c > maxInt/(n-k+i) {
			return maxInt
		}
		c = c * (n - k + i) / i
	}
	return c
}
