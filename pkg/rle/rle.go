// Package rle implements run-length encoding over ordered symbol sequences.
package rle

// Run is a single (symbol, count) pair.
type Run[T comparable] struct {
	Value T
	Count int
}

// Encode compresses consecutive equal symbols into runs. Concatenating
// Count repetitions of each Value in order reconstructs the input exactly.
// An empty input yields a nil result, which callers treat as "not applicable".
// Runs are never truncated; a run of length N is always a single pair.
func Encode[T comparable](seq []T) []Run[T] {
	if len(seq) == 0 {
		return nil
	}
	runs := make([]Run[T], 0, 16)
	current := Run[T]{Value: seq[0], Count: 1}
	for _, v := range seq[1:] {
		if v == current.Value {
			current.Count++
			continue
		}
		runs = append(runs, current)
		current = Run[T]{Value: v, Count: 1}
	}
	return append(runs, current)
}

// Decode expands runs back into the original sequence.
func Decode[T comparable](runs []Run[T]) []T {
	total := 0
	for _, r := range runs {
		total += r.Count
	}
	seq := make([]T, 0, total)
	for _, r := range runs {
		for i := 0; i < r.Count; i++ {
			seq = append(seq, r.Value)
		}
	}
	return seq
}
