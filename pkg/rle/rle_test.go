package rle

import (
	"reflect"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	sequences := [][]int{
		{1},
		{1, 1, 1, 1},
		{1, 2, 3},
		{1, 1, 2, 2, 2, 3, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{5, 4, 5, 4, 5, 4},
	}

	for _, seq := range sequences {
		runs := Encode(seq)

		total := 0
		for _, r := range runs {
			total += r.Count
		}
		if total != len(seq) {
			t.Errorf("run counts sum to %d, want %d for %v", total, len(seq), seq)
		}

		if got := Decode(runs); !reflect.DeepEqual(got, seq) {
			t.Errorf("round trip mismatch: got %v, want %v", got, seq)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	if runs := Encode([]int(nil)); runs != nil {
		t.Errorf("expected nil for empty input, got %v", runs)
	}
}

func TestEncode_SingleRun(t *testing.T) {
	runs := Encode([]string{"ff0000", "ff0000", "ff0000"})
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Value != "ff0000" || runs[0].Count != 3 {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestEncode_ValueEquality(t *testing.T) {
	// Runs are bounded by value equality, not identity.
	a := "ab"
	b := "a" + "b"
	runs := Encode([]string{a, b})
	if len(runs) != 1 || runs[0].Count != 2 {
		t.Errorf("equal values should merge into one run, got %v", runs)
	}
}
