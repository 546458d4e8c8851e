package indexer

import "testing"

func TestSplitRangeExact(t *testing.T) {
	ranges, err := SplitRange(100, 299, 100)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := []LedgerRange{{100, 199}, {200, 299}}
	if len(ranges) != len(want) {
		t.Fatalf("range count mismatch: %d", len(ranges))
	}
	for i, r := range ranges {
		if r != want[i] {
			t.Fatalf("range %d mismatch: %+v != %+v", i, r, want[i])
		}
	}
}

func TestSplitRangeRemainder(t *testing.T) {
	ranges, err := SplitRange(1, 250, 100)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(ranges) != 3 {
		t.Fatalf("range count mismatch: %d", len(ranges))
	}
	last := ranges[2]
	if last.From != 201 || last.To != 250 {
		t.Fatalf("last range mismatch: %+v", last)
	}
}

func TestSplitRangeSingle(t *testing.T) {
	ranges, err := SplitRange(42, 42, 100)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(ranges) != 1 || ranges[0].From != 42 || ranges[0].To != 42 {
		t.Fatalf("single range mismatch: %+v", ranges)
	}
}

func TestSplitRangeInvalid(t *testing.T) {
	if _, err := SplitRange(10, 5, 100); err == nil {
		t.Fatalf("reversed range accepted")
	}
	if _, err := SplitRange(1, 10, 0); err == nil {
		t.Fatalf("zero batch size accepted")
	}
}
