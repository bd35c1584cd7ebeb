package genome

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samridhim/dfim/internal/interval"
	"github.com/samridhim/dfim/internal/onehot"
)

// Window is one extracted, one-hot encoded sequence window.
// Raw is only kept when requested at extraction time
type Window struct {
	Raw    string
	OneHot *mat.Dense
}

// Rows exports the one-hot matrix as a slice of rows for serialization
func (w Window) Rows() [][]float64 {
	rows, cols := w.OneHot.Dims()

	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = w.OneHot.At(r, c)
		}
	}
	return out
}

// Windows slices and encodes one window per interval, in input order.
// Slices past a sequence's bounds are silently truncated; a missing
// chromosome is fatal for the whole batch
func Windows(g Genome, intervals []interval.Interval, keepRaw bool) ([]Window, error) {
	windows := make([]Window, 0, len(intervals))
	for _, iv := range intervals {
		chromSeq, ok := g[iv.Chrom]
		if !ok {
			return nil, &UnknownChromosomeError{Chrom: iv.Chrom}
		}

		raw := chromSeq[clamp(iv.Start, len(chromSeq)):clamp(iv.End, len(chromSeq))]
		encoded, err := onehot.Encode(raw)
		if err != nil {
			return nil, err
		}

		w := Window{OneHot: encoded}
		if keepRaw {
			w.Raw = raw
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func clamp(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}
