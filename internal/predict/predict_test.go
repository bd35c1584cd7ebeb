package predict

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_Correct(t *testing.T) {
	trueLabels := []int{1, 0, 1, 0}
	scores := []float64{0.9, 0.2, 0.3, 0.6}
	neg := 0.5

	type args struct {
		pos float64
		neg *float64
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"positives and negatives",
			args{0.5, &neg},
			[]int{0, 1},
		},
		{
			"positives only",
			args{0.5, nil},
			[]int{0},
		},
		{
			"high positive threshold",
			args{0.95, nil},
			[]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correct(trueLabels, scores, tt.args.pos, tt.args.neg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("failed, correct indices = %v, want %v", got, tt.want)
			}
		})
	}
}

// thresholds are strict: a score equal to the threshold is not correct
func Test_Correct_strictThresholds(t *testing.T) {
	neg := 0.5
	got := Correct([]int{1, 0}, []float64{0.5, 0.5}, 0.5, &neg)

	if len(got) != 0 {
		t.Errorf("failed, threshold-equal scores counted as correct: %v", got)
	}
}

func Test_CorrectPerTask(t *testing.T) {
	predictions := [][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
		{0.7, 0.4},
	}
	labels := LabelTable{
		KeyColumn: 3,
		rows: [][]string{
			{"chr1", "0", "10", "peak0", "1", "0"},
			{"chr1", "20", "30", "peak1", "0", "1"},
			{"chr1", "40", "50", "peak2", "1", "1"},
		},
	}

	neg := 0.5
	correct, err := CorrectPerTask(predictions, labels, 0.5, &neg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(correct[0], []int{0, 1, 2}) {
		t.Errorf("failed, task 0 correct = %v, want [0 1 2]", correct[0])
	}
	if !reflect.DeepEqual(correct[1], []int{0, 1}) {
		t.Errorf("failed, task 1 correct = %v, want [0 1]", correct[1])
	}
}

func Test_CorrectPerTask_empty(t *testing.T) {
	correct, err := CorrectPerTask(nil, LabelTable{}, 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(correct) != 0 {
		t.Errorf("failed, empty predictions produced tasks: %v", correct)
	}
}

func Test_ReadPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preds.tsv")
	if err := os.WriteFile(path, []byte("0.9\t0.1\n0.2\t0.8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	predictions, err := ReadPredictions(path)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	if !reflect.DeepEqual(predictions, want) {
		t.Errorf("failed, predictions = %v, want %v", predictions, want)
	}
}

func Test_ReadLabelTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.tsv")
	contents := "chrom\tstart\tend\tname\ttask0\ttask1\nchr1\t0\t10\tpeak0\t1\t0\nchr1\t20\t30\tpeak1\t0\t1\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	labels, err := ReadLabelTable(path, 3)
	if err != nil {
		t.Fatal(err)
	}

	task0, err := labels.Task(0)
	if err != nil {
		t.Fatal(err)
	}
	task1, err := labels.Task(1)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(task0, []int{1, 0}) || !reflect.DeepEqual(task1, []int{0, 1}) {
		t.Errorf("failed, task labels = %v and %v", task0, task1)
	}

	// a task without a column is an error, not a panic
	if _, err := labels.Task(5); err == nil {
		t.Error("failed, expected an error for a task past the table's columns")
	}
}
