package locations

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"

	"github.com/samridhim/dfim/internal/genome"
)

// SimRow is one row of a synthetic-data table: the embeddings field
// for one generated sequence, or nothing when the sequence carries no
// embedded motifs
type SimRow struct {
	Embeddings string
	Missing    bool
}

// placement is one parsed motif placement: where the motif starts in
// its sequence, its name, and the embedded bases (whose length gives
// the placement's span)
type placement struct {
	start int
	name  string
	label string
}

func (p placement) end() int {
	return p.start + len(p.label)
}

// motif is the placement's motif name, up to the name's first underscore
func (p placement) motif() string {
	motif, _, _ := strings.Cut(p.name, "_")
	return motif
}

// parsePlacement parses a "pos-<start>_<name>-<label>" token,
// rejecting anything malformed before coordinates are derived from it
func parsePlacement(token string) (placement, error) {
	rest, ok := strings.CutPrefix(token, "pos-")
	if !ok {
		return placement{}, fmt.Errorf("placement %q is missing its pos- prefix", token)
	}

	startField, tail, ok := strings.Cut(rest, "_")
	if !ok {
		return placement{}, fmt.Errorf("placement %q is missing a motif name", token)
	}

	start, err := strconv.Atoi(startField)
	if err != nil {
		return placement{}, fmt.Errorf("placement %q has a bad start coordinate: %v", token, err)
	}

	name, label, ok := strings.Cut(tail, "-")
	if !ok || name == "" || label == "" {
		return placement{}, fmt.Errorf("placement %q is missing its <name>-<label> field", token)
	}

	return placement{start: start, name: name, label: label}, nil
}

// ShapeMismatchError is returned when a simdata table's row count does
// not match the number of extracted sequence windows
type ShapeMismatchError struct {
	Windows int
	Rows    int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("simdata table has %d rows for %d sequence windows", e.Rows, e.Windows)
}

// Decode turns each window's embeddings field into location records:
// one record per placement, keyed seq_<row>_emb_<token>, with the
// placement itself as the mutation region and every sibling placement
// in the same row as a response region. Rows without embeddings are
// skipped. The windows themselves are only consulted for row-count
// validation
func Decode(windows []genome.Window, rows []SimRow) (map[string]Record, error) {
	if len(rows) != len(windows) {
		return nil, &ShapeMismatchError{Windows: len(windows), Rows: len(rows)}
	}

	records := map[string]Record{}
	for seqInd, row := range rows {
		if row.Missing || row.Embeddings == "" {
			logrus.Infof("no embeddings for seq %d", seqInd)
			continue
		}

		tokens := strings.Split(row.Embeddings, ",")
		placements := make([]placement, len(tokens))
		for i, token := range tokens {
			p, err := parsePlacement(token)
			if err != nil {
				return nil, fmt.Errorf("failed to decode embeddings of seq %d: %v", seqInd, err)
			}
			placements[i] = p
		}

		// each placement becomes the mutation while its siblings in the
		// same row become its response regions
		for i, p := range placements {
			record := Record{
				Seq:        seqInd,
				MutStart:   p.start,
				MutEnd:     p.end(),
				MutName:    p.motif(),
				RespStarts: []int{},
				RespEnds:   []int{},
				RespNames:  []string{},
			}
			for j, sibling := range placements {
				if j == i {
					continue
				}
				record.RespStarts = append(record.RespStarts, sibling.start)
				record.RespEnds = append(record.RespEnds, sibling.end())
				record.RespNames = append(record.RespNames, sibling.motif())
			}

			records[EmbeddingKey(seqInd, tokens[i])] = record
		}
	}

	return records, nil
}

// ReadSimdata reads a tab-delimited synthetic-data table with an
// "embeddings" column, transparently decompressing .gz files
func ReadSimdata(path string) ([]SimRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open simdata table %s: %v", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress simdata table %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}

	df := dataframe.ReadCSV(
		r,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read simdata table %s: %v", path, df.Err)
	}

	col := -1
	for i, name := range df.Names() {
		if name == "embeddings" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("failed to read simdata table %s: no embeddings column", path)
	}

	rows := make([]SimRow, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		elem := df.Elem(i, col)
		val := elem.String()
		if elem.IsNA() || val == "" || val == "NA" || val == "NaN" {
			rows[i] = SimRow{Missing: true}
			continue
		}
		rows[i] = SimRow{Embeddings: val}
	}

	return rows, nil
}
