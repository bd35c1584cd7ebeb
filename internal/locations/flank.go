package locations

import (
	"github.com/samridhim/dfim/internal/genome"
	"github.com/samridhim/dfim/internal/interval"
)

// MapFlanked pads each interval to windowLength, extracts its window
// and maps the interval into window-relative coordinates with a single
// flank response region around it. Records are keyed seq_<index>, one
// per input interval, in input order
func MapFlanked(intervals []interval.Interval, g genome.Genome, windowLength, flankSize int, keepRaw bool) ([]genome.Window, map[string]Record, error) {
	padded := make([]interval.Interval, 0, len(intervals))
	records := map[string]Record{}

	for i, iv := range intervals {
		pre, post, err := iv.Pad(windowLength)
		if err != nil {
			return nil, nil, err
		}
		padded = append(padded, iv.Padded(pre, post))

		size := iv.Size()
		records[Key(i)] = Record{
			Seq:        i,
			MutStart:   pre,
			MutEnd:     pre + size,
			MutName:    iv.String(), // provenance: the unpadded coordinates
			RespStarts: []int{pre - flankSize},
			RespEnds:   []int{pre + size + flankSize},
			RespNames:  []string{flankName(flankSize)},
		}
	}

	windows, err := genome.Windows(g, padded, keepRaw)
	if err != nil {
		return nil, nil, err
	}

	return windows, records, nil
}
