package predict

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// LabelTable is a label table whose task columns sit at a fixed offset
// from the task index: task t's labels live in column t + KeyColumn + 1
type LabelTable struct {
	rows [][]string

	// KeyColumn is the last of the leading non-label columns
	KeyColumn int
}

// Task extracts task's 0/1 labels from its column
func (lt LabelTable) Task(task int) ([]int, error) {
	col := task + lt.KeyColumn + 1

	labels := make([]int, len(lt.rows))
	for i, row := range lt.rows {
		if col >= len(row) {
			return nil, fmt.Errorf("failed to read task %d: label table has no column %d", task, col)
		}
		label, err := strconv.Atoi(row[col])
		if err != nil {
			return nil, fmt.Errorf("failed to parse label at row %d, column %d: %v", i, col, err)
		}
		labels[i] = label
	}

	return labels, nil
}

// ReadLabelTable reads a tab-delimited label table; keyColumn is the
// offset of the last leading non-label column
func ReadLabelTable(path string, keyColumn int) (LabelTable, error) {
	df, err := readFrame(path)
	if err != nil {
		return LabelTable{}, err
	}

	rows := make([][]string, 0, df.Nrow())
	for r := firstDataRow(df, keyColumn+1); r < df.Nrow(); r++ {
		row := make([]string, df.Ncol())
		for c := 0; c < df.Ncol(); c++ {
			row[c] = df.Elem(r, c).String()
		}
		rows = append(rows, row)
	}

	return LabelTable{rows: rows, KeyColumn: keyColumn}, nil
}

// ReadPredictions reads a tab-delimited numeric matrix, one column per
// task
func ReadPredictions(path string) ([][]float64, error) {
	df, err := readFrame(path)
	if err != nil {
		return nil, err
	}

	var predictions [][]float64
	for r := firstDataRow(df, 0); r < df.Nrow(); r++ {
		row := make([]float64, df.Ncol())
		for c := 0; c < df.Ncol(); c++ {
			score, err := strconv.ParseFloat(df.Elem(r, c).String(), 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse prediction at row %d, column %d of %s: %v", r, c, path, err)
			}
			row[c] = score
		}
		predictions = append(predictions, row)
	}

	return predictions, nil
}

func readFrame(path string) (dataframe.DataFrame, error) {
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

	return df, nil
}

// firstDataRow skips a header row, detected by a non-numeric value in
// the probe column
func firstDataRow(df dataframe.DataFrame, probeCol int) int {
	if df.Nrow() == 0 || probeCol >= df.Ncol() {
		return 0
	}
	if _, err := strconv.ParseFloat(df.Elem(0, probeCol).String(), 64); err != nil {
		return 1
	}
	return 0
}
