package overlap

import (
	"testing"

	"github.com/dhconnelly/rtreego"

	"github.com/samridhim/dfim/internal/interval"
)

var _ rtreego.Spatial = &indexedInterval{}

func label(chrom string, start, end int) interval.Label {
	return interval.Label{Interval: interval.Interval{Chrom: chrom, Start: start, End: end}}
}

func Test_Join(t *testing.T) {
	intervals := []interval.Interval{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 300, End: 400},
		{Chrom: "chr2", Start: 100, End: 200},
	}
	labels := []interval.Label{
		label("chr1", 150, 350), // overlaps intervals 0 and 1
		label("chr2", 190, 250), // overlaps interval 2
		label("chr3", 100, 200), // chromosome with no intervals
	}

	pairs, err := Join(labels, intervals)
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 3 {
		t.Fatalf("failed, join produced %d pairs, want 3", len(pairs))
	}

	// ordered by label index, then interval index
	wantIntervals := []int{0, 1, 2}
	wantLabels := []int{0, 0, 1}
	for i, p := range pairs {
		if p.IntervalIndex != wantIntervals[i] || p.LabelIndex != wantLabels[i] {
			t.Errorf("failed, pair %d is label %d x interval %d, want label %d x interval %d",
				i, p.LabelIndex, p.IntervalIndex, wantLabels[i], wantIntervals[i])
		}
	}
}

// half-open intervals that merely touch do not overlap
func Test_Join_touching(t *testing.T) {
	intervals := []interval.Interval{{Chrom: "chr1", Start: 100, End: 200}}
	labels := []interval.Label{
		label("chr1", 200, 300), // starts where the interval ends
		label("chr1", 50, 100),  // ends where the interval starts
	}

	pairs, err := Join(labels, intervals)
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 0 {
		t.Errorf("failed, touching intervals joined: %v", pairs)
	}
}

func Test_Join_empty(t *testing.T) {
	intervals := []interval.Interval{{Chrom: "chr1", Start: 0, End: 10}}
	labels := []interval.Label{label("chr1", 500, 600)}

	pairs, err := Join(labels, intervals)
	if err != nil {
		t.Fatal(err)
	}

	// zero overlaps is an empty result, not an error
	if len(pairs) != 0 {
		t.Errorf("failed, expected no pairs, got %d", len(pairs))
	}
}

func Test_intervalRect(t *testing.T) {
	rect, err := intervalRect(interval.Interval{Chrom: "chr1", Start: 100, End: 200})
	if err != nil {
		t.Fatal(err)
	}

	if rect.PointCoord(0) != 100 || rect.LengthsCoord(0) != 100 {
		t.Errorf("failed, rect spans [%f, +%f), want [100, +100)",
			rect.PointCoord(0), rect.LengthsCoord(0))
	}

	// zero-size intervals cannot be indexed
	if _, err := intervalRect(interval.Interval{Chrom: "chr1", Start: 5, End: 5}); err == nil {
		t.Error("failed, expected an error for an empty interval")
	}
}

func Test_Join_containment(t *testing.T) {
	intervals := []interval.Interval{{Chrom: "chr1", Start: 100, End: 1000}}
	labels := []interval.Label{label("chr1", 400, 450)}

	pairs, err := Join(labels, intervals)
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 1 {
		t.Fatalf("failed, contained label produced %d pairs, want 1", len(pairs))
	}
	if pairs[0].Interval.Size() != 900 {
		t.Errorf("failed, joined interval is %v", pairs[0].Interval)
	}
}
