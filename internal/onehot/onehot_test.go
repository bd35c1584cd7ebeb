package onehot

import (
	"errors"
	"testing"
)

func Test_Encode(t *testing.T) {
	encoded, err := Encode("ACGTN")
	if err != nil {
		t.Fatal(err)
	}

	rows, cols := encoded.Dims()
	if rows != 5 || cols != 4 {
		t.Fatalf("failed, encoded matrix is %dx%d, want 5x4", rows, cols)
	}

	want := [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	for r := range want {
		for c := range want[r] {
			if encoded.At(r, c) != want[r][c] {
				t.Errorf("failed, encoded[%d][%d] = %f, want %f", r, c, encoded.At(r, c), want[r][c])
			}
		}
	}
}

func Test_Encode_lowercase(t *testing.T) {
	upper, err := Encode("ACGT")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := Encode("acgt")
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if upper.At(r, c) != lower.At(r, c) {
				t.Errorf("failed, case changed the encoding at [%d][%d]", r, c)
			}
		}
	}
}

// each row holds at most a single 1, and a 1 only for an unambiguous base
func Test_Encode_rowSums(t *testing.T) {
	seq := "ACGTNacgtnNNTA"
	encoded, err := Encode(seq)
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < len(seq); r++ {
		sum := 0.0
		for c := 0; c < 4; c++ {
			sum += encoded.At(r, c)
		}

		isN := seq[r] == 'N' || seq[r] == 'n'
		if isN && sum != 0 {
			t.Errorf("failed, N row %d sums to %f, want 0", r, sum)
		}
		if !isN && sum != 1 {
			t.Errorf("failed, row %d sums to %f, want 1", r, sum)
		}
	}
}

func Test_Encode_unsupported(t *testing.T) {
	_, err := Encode("ACZT")
	if err == nil {
		t.Fatal("failed, expected an error encoding 'Z'")
	}

	var charErr *UnsupportedCharacterError
	if !errors.As(err, &charErr) {
		t.Fatalf("failed, expected UnsupportedCharacterError, got %v", err)
	}
	if charErr.Char != 'Z' || charErr.Pos != 2 {
		t.Errorf("failed, error carries %q at %d, want 'Z' at 2", charErr.Char, charErr.Pos)
	}
}

func Test_Encode_empty(t *testing.T) {
	encoded, err := Encode("")
	if err != nil {
		t.Fatal(err)
	}

	if rows, _ := encoded.Dims(); rows != 0 {
		t.Errorf("failed, empty sequence encoded to %d rows", rows)
	}
}
