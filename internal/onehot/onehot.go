// Package onehot encodes nucleotide sequences as one-hot matrices
// for model input.
package onehot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Encode turns a nucleotide sequence into a len(sequence) x 4 one-hot
// matrix. Columns are A, C, G, T in that order (case-insensitive).
// An N leaves its row all-zero. Any other character is an error
func Encode(sequence string) (*mat.Dense, error) {
	if len(sequence) == 0 {
		return &mat.Dense{}, nil
	}

	encoded := mat.NewDense(len(sequence), 4, nil)
	for pos := 0; pos < len(sequence); pos++ {
		col, err := baseColumn(sequence[pos], pos)
		if err != nil {
			return nil, err
		}
		if col < 0 {
			continue // N, row stays zero
		}
		encoded.Set(pos, col, 1)
	}

	return encoded, nil
}

// baseColumn maps a nucleotide to its one-hot column. Returns -1 for N
func baseColumn(char byte, pos int) (int, error) {
	switch char {
	case 'A', 'a':
		return 0, nil
	case 'C', 'c':
		return 1, nil
	case 'G', 'g':
		return 2, nil
	case 'T', 't':
		return 3, nil
	case 'N', 'n':
		return -1, nil
	}

	return 0, &UnsupportedCharacterError{Char: rune(char), Pos: pos}
}

// UnsupportedCharacterError is returned when a sequence holds a
// character outside {A,C,G,T,N}
type UnsupportedCharacterError struct {
	Char rune
	Pos  int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("unsupported character %q at position %d", e.Char, e.Pos)
}
