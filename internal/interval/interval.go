// Package interval models half-open genomic intervals and the padding
// math used to center them in fixed-length sequence windows.
package interval

import "fmt"

// Interval is a half-open, 0-based genomic region in absolute
// genome coordinates
type Interval struct {
	Chrom string
	Start int
	End   int
}

// Label is a row from a label table: an interval plus the absolute
// start/end of the feature it marks
type Label struct {
	Interval

	FeatureStart int
	FeatureEnd   int
}

// Size is the number of bases the interval spans
func (i Interval) Size() int {
	return i.End - i.Start
}

// String renders the interval as "chrom:start-end"
func (i Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", i.Chrom, i.Start, i.End)
}

// Pad computes the flanks needed to grow the interval to windowLength.
// The pad is split into symmetric halves; an odd pad gives the ceiling
// to the pre flank and the floor to the post flank
func (i Interval) Pad(windowLength int) (pre, post int, err error) {
	pad := windowLength - i.Size()
	if pad < 0 {
		return 0, 0, &WindowTooSmallError{Interval: i, WindowLength: windowLength}
	}

	pre = (pad + pad%2) / 2
	post = pad - pre

	return pre, post, nil
}

// Padded is the interval grown by pre bases upstream and post bases
// downstream, for window extraction
func (i Interval) Padded(pre, post int) Interval {
	return Interval{
		Chrom: i.Chrom,
		Start: i.Start - pre,
		End:   i.End + post,
	}
}

// WindowTooSmallError is returned when a requested window length is
// shorter than an interval's own span
type WindowTooSmallError struct {
	Interval     Interval
	WindowLength int
}

func (e *WindowTooSmallError) Error() string {
	return fmt.Sprintf(
		"window length %d is smaller than interval %s (%d bases)",
		e.WindowLength, e.Interval, e.Interval.Size(),
	)
}
