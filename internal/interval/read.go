package interval

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// ReadBED reads a tab-delimited interval table (BED-style) into
// intervals. The first three columns are chrom, start, end; a header
// row is accepted and skipped when present
func ReadBED(path string) ([]Interval, error) {
	df, err := readTable(path, 3)
	if err != nil {
		return nil, err
	}

	var intervals []Interval
	for r := firstDataRow(df); r < df.Nrow(); r++ {
		iv, err := rowInterval(df, r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse interval at row %d of %s: %v", r, path, err)
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}

// ReadLabels reads a tab-delimited label table: interval columns
// followed by the feature's absolute start and end
func ReadLabels(path string) ([]Label, error) {
	df, err := readTable(path, 5)
	if err != nil {
		return nil, err
	}

	var labels []Label
	for r := firstDataRow(df); r < df.Nrow(); r++ {
		iv, err := rowInterval(df, r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse label at row %d of %s: %v", r, path, err)
		}

		featStart, err := strconv.Atoi(df.Elem(r, 3).String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse feature start at row %d of %s: %v", r, path, err)
		}
		featEnd, err := strconv.Atoi(df.Elem(r, 4).String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse feature end at row %d of %s: %v", r, path, err)
		}

		labels = append(labels, Label{
			Interval:     iv,
			FeatureStart: featStart,
			FeatureEnd:   featEnd,
		})
	}

	return labels, nil
}

// readTable loads a tab-delimited file as an untyped dataframe and
// checks it carries at least minCols columns
func readTable(path string, minCols int) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(
		f,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.WithComments('#'),
	)
	if df.Err != nil {
		return df, fmt.Errorf("failed to read table %s: %v", path, df.Err)
	}
	if df.Ncol() < minCols {
		return df, fmt.Errorf("failed to read table %s: %d columns, need at least %d", path, df.Ncol(), minCols)
	}

	return df, nil
}

// firstDataRow returns 1 when the table opens with a header row
// (non-numeric start column), 0 otherwise
func firstDataRow(df dataframe.DataFrame) int {
	if df.Nrow() == 0 {
		return 0
	}
	if _, err := strconv.Atoi(df.Elem(0, 1).String()); err != nil {
		return 1
	}
	return 0
}

// rowInterval parses the chrom/start/end columns of a table row
func rowInterval(df dataframe.DataFrame, r int) (Interval, error) {
	start, err := strconv.Atoi(df.Elem(r, 1).String())
	if err != nil {
		return Interval{}, fmt.Errorf("bad start: %v", err)
	}
	end, err := strconv.Atoi(df.Elem(r, 2).String())
	if err != nil {
		return Interval{}, fmt.Errorf("bad end: %v", err)
	}

	return Interval{
		Chrom: df.Elem(r, 0).String(),
		Start: start,
		End:   end,
	}, nil
}
