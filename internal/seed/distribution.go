package seed

import (
	"fmt"
	"math/rand"
	"sort"
)

// Distribution maps a categorical label to the exact number of records
// that must carry it in a generated batch.
type Distribution[T ~string] map[T]int

// Total returns the sum of all configured counts.
func (d Distribution[T]) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Validate rejects negative counts and labels outside the closed set.
func (d Distribution[T]) Validate(valid func(T) bool) error {
	for label, count := range d {
		if count < 0 {
			return fmt.Errorf("negative count %d for label %q", count, string(label))
		}
		if !valid(label) {
			return fmt.Errorf("unknown label %q in distribution", string(label))
		}
	}
	return nil
}

// Expand produces an ordered sequence of n label assignments in which
// each label appears exactly its configured count, uniformly shuffled.
// Indices beyond the distribution total receive the fallback label, so
// exact bucket compliance holds whenever n does not exceed the total.
func (d Distribution[T]) Expand(n int, fallback T, rng *rand.Rand) []T {
	labels := make([]T, 0, len(d))
	for label := range d {
		labels = append(labels, label)
	}
	// Map iteration order is randomized by the runtime; sort so the
	// result depends only on the rng seed.
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	expanded := make([]T, 0, d.Total())
	for _, label := range labels {
		for i := 0; i < d[label]; i++ {
			expanded = append(expanded, label)
		}
	}
	rng.Shuffle(len(expanded), func(i, j int) {
		expanded[i], expanded[j] = expanded[j], expanded[i]
	})

	if n <= len(expanded) {
		return expanded[:n]
	}
	for len(expanded) < n {
		expanded = append(expanded, fallback)
	}
	return expanded
}
