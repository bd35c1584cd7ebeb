package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samridhim/dfim/internal/genome"
	"github.com/samridhim/dfim/internal/locations"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Output is a struct containing a command's results for serialization
type Output struct {
	// Time, ex:
	// "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// WindowLength and FlankSize echo the mapping parameters
	WindowLength int `json:"windowLength,omitempty"`
	FlankSize    int `json:"flankSize,omitempty"`

	// Sequences are the raw window strings (with --fasta)
	Sequences []string `json:"sequences,omitempty"`

	// Tensors are the one-hot window matrices (with --tensors)
	Tensors [][][]float64 `json:"tensors,omitempty"`

	// Records maps record keys to window-relative locations
	Records map[string]locations.Record `json:"records,omitempty"`

	// Correct maps task index to the indices of correct predictions
	Correct map[int][]int `json:"correct,omitempty"`
}

// newOutput stamps an Output with the save time and execution seconds
func newOutput(start time.Time) Output {
	t := time.Now()
	return Output{
		Time: fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()),
		Execution: time.Since(start).Seconds(),
	}
}

// addWindows attaches raw sequences and/or tensors to the output
func (o *Output) addWindows(windows []genome.Window, keepRaw, keepTensors bool) {
	if keepRaw {
		o.Sequences = make([]string, len(windows))
		for i, w := range windows {
			o.Sequences[i] = w.Raw
		}
	}
	if keepTensors {
		o.Tensors = make([][][]float64, len(windows))
		for i, w := range windows {
			o.Tensors[i] = w.Rows()
		}
	}
}

// write renders the output as indented JSON to the out path, or to
// stdout when out is empty
func write(out string, output Output) {
	contents, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		stderr.Fatalf("failed to serialize output: %v", err)
	}

	if out == "" {
		fmt.Println(string(contents))
		return
	}
	if err := os.WriteFile(out, contents, 0666); err != nil {
		stderr.Fatalf("failed to write the output: %v", err)
	}
}
