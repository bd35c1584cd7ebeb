// Package overlap joins two sets of genomic intervals on coordinate
// overlap, via per-chromosome R-trees.
package overlap

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/samridhim/dfim/internal/interval"
)

// Pair is one overlapping label/interval combination from a join,
// carrying both rows and their source indices
type Pair struct {
	Label         interval.Label
	Interval      interval.Interval
	LabelIndex    int
	IntervalIndex int
}

// indexedInterval makes an interval spatially searchable while
// remembering its position in the input slice
type indexedInterval struct {
	iv     interval.Interval
	index  int
	bounds rtreego.Rect
}

func (s *indexedInterval) Bounds() rtreego.Rect {
	return s.bounds
}

// Join returns every label/interval pair whose coordinates intersect.
// Pairs are ordered by label index, then interval index. Zero overlaps
// is a legal, empty result
func Join(labels []interval.Label, intervals []interval.Interval) ([]Pair, error) {
	trees := map[string]*rtreego.Rtree{}
	for i, iv := range intervals {
		rect, err := intervalRect(iv)
		if err != nil {
			return nil, err
		}

		tree, ok := trees[iv.Chrom]
		if !ok {
			tree = rtreego.NewTree(2, 25, 50)
			trees[iv.Chrom] = tree
		}
		tree.Insert(&indexedInterval{iv: iv, index: i, bounds: rect})
	}

	var pairs []Pair
	for li, l := range labels {
		tree := trees[l.Chrom]
		if tree == nil {
			continue
		}

		rect, err := intervalRect(l.Interval)
		if err != nil {
			return nil, err
		}

		var hits []*indexedInterval
		for _, match := range tree.SearchIntersect(rect) {
			hit := match.(*indexedInterval)

			// half-open semantics: intervals that only touch do not overlap
			if l.Start < hit.iv.End && hit.iv.Start < l.End {
				hits = append(hits, hit)
			}
		}

		// the R-tree search order isn't stable; restore input order
		sort.Slice(hits, func(a, b int) bool { return hits[a].index < hits[b].index })

		for _, hit := range hits {
			pairs = append(pairs, Pair{
				Label:         l,
				Interval:      hit.iv,
				LabelIndex:    li,
				IntervalIndex: hit.index,
			})
		}
	}

	return pairs, nil
}

func intervalRect(iv interval.Interval) (rtreego.Rect, error) {
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(iv.Start), 0},
		[]float64{float64(iv.Size()), 1},
	)
	if err != nil {
		return rtreego.Rect{}, fmt.Errorf("failed to index interval %s: %v", iv, err)
	}
	return rect, nil
}
