// Package genome loads a reference genome from FASTA and extracts
// encoded sequence windows around genomic intervals.
package genome

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Genome is a read-only lookup from sequence name to nucleotide string.
// It can safely be shared across window-extraction calls
type Genome map[string]string

// Load reads every record of a FASTA file into a Genome
func Load(path string) (Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genome %s: %v", path, err)
	}
	defer f.Close()

	g := Genome{}
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		g[s.Name()] = s.Seq.String()
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read genome %s: %v", path, err)
	}

	return g, nil
}

// UnknownChromosomeError is returned when an interval references a
// sequence name missing from the genome
type UnknownChromosomeError struct {
	Chrom string
}

func (e *UnknownChromosomeError) Error() string {
	return fmt.Sprintf("chromosome %s is not in the genome", e.Chrom)
}
