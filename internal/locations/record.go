// Package locations maps regions of interest into window-relative
// coordinates: decoding synthetic motif placements and padding genomic
// intervals into fixed-length windows with flank response regions.
package locations

import "fmt"

// Record locates one mutation/feature region and its response regions,
// all in coordinates relative to the owning sequence window. Response
// lists always have equal lengths. Coordinates may be negative or
// exceed the window length when a region runs past the window boundary
type Record struct {
	// Seq is the index of the owning sequence window
	Seq int `json:"seq"`

	// the mutation/feature region and its identifier
	MutStart int    `json:"mut_start"`
	MutEnd   int    `json:"mut_end"`
	MutName  string `json:"mut_name"`

	// the response regions, positionally matched across the three lists
	RespStarts []int    `json:"resp_start"`
	RespEnds   []int    `json:"resp_end"`
	RespNames  []string `json:"resp_names"`
}

// Key is the record key for a window's single record
func Key(seq int) string {
	return fmt.Sprintf("seq_%d", seq)
}

// EmbeddingKey is the record key for one placement of a synthetic
// sequence, suffixed with the raw placement token
func EmbeddingKey(seq int, token string) string {
	return fmt.Sprintf("seq_%d_emb_%s", seq, token)
}

func flankName(flankSize int) string {
	return fmt.Sprintf("flank_%d", flankSize)
}
