package locations

import (
	"github.com/sirupsen/logrus"

	"github.com/samridhim/dfim/internal/genome"
	"github.com/samridhim/dfim/internal/interval"
	"github.com/samridhim/dfim/internal/overlap"
)

// MapLabeled joins labels against intervals on overlap and maps each
// joined pair into a window. Padding is keyed on the interval's span
// (the window stays centered on the original peak) while the mutation
// region comes from the label's feature coordinates. Records are keyed
// seq_<index> in join order; zero overlaps is an empty result
func MapLabeled(intervals []interval.Interval, labels []interval.Label, g genome.Genome, windowLength, flankSize int, keepRaw bool) ([]genome.Window, map[string]Record, error) {
	pairs, err := overlap.Join(labels, intervals)
	if err != nil {
		return nil, nil, err
	}
	if len(pairs) == 0 {
		logrus.Warn("no labels overlap the intervals")
		return []genome.Window{}, map[string]Record{}, nil
	}

	padded := make([]interval.Interval, 0, len(pairs))
	records := map[string]Record{}

	for i, pair := range pairs {
		iv := pair.Interval
		pre, post, err := iv.Pad(windowLength)
		if err != nil {
			return nil, nil, err
		}
		padded = append(padded, iv.Padded(pre, post))

		// the label's absolute feature coordinates, made window-relative
		featStart := pair.Label.FeatureStart - iv.Start + pre
		featEnd := pair.Label.FeatureEnd - iv.Start + post

		records[Key(i)] = Record{
			Seq:        i,
			MutStart:   featStart,
			MutEnd:     featEnd,
			MutName:    iv.String(),
			RespStarts: []int{featStart - flankSize},
			RespEnds:   []int{featEnd + flankSize},
			RespNames:  []string{flankName(flankSize)},
		}
	}

	windows, err := genome.Windows(g, padded, keepRaw)
	if err != nil {
		return nil, nil, err
	}

	return windows, records, nil
}
