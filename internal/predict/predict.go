// Package predict filters model predictions down to the indices of
// correct calls, per task.
package predict

import "fmt"

// Correct returns the indices of correctly predicted examples in
// ascending order: positives scoring above posThreshold and, when
// negThreshold is supplied, negatives scoring below it. An index
// appears at most once
func Correct(trueLabels []int, scores []float64, posThreshold float64, negThreshold *float64) []int {
	correct := []int{}
	for i := range trueLabels {
		if trueLabels[i] == 1 && scores[i] > posThreshold {
			correct = append(correct, i)
		}
		if negThreshold != nil && trueLabels[i] == 0 && scores[i] < *negThreshold {
			correct = append(correct, i)
		}
	}

	return correct
}

// CorrectPerTask applies Correct independently to every prediction
// column, keyed by task index. Task labels come from the label table at
// the task's fixed column offset
func CorrectPerTask(predictions [][]float64, labels LabelTable, posThreshold float64, negThreshold *float64) (map[int][]int, error) {
	correct := map[int][]int{}
	if len(predictions) == 0 {
		return correct, nil
	}

	tasks := len(predictions[0])
	for task := 0; task < tasks; task++ {
		taskLabels, err := labels.Task(task)
		if err != nil {
			return nil, err
		}
		if len(taskLabels) != len(predictions) {
			return nil, fmt.Errorf(
				"failed to filter task %d: %d labels for %d predictions",
				task, len(taskLabels), len(predictions),
			)
		}

		taskScores := make([]float64, len(predictions))
		for i, row := range predictions {
			if len(row) != tasks {
				return nil, fmt.Errorf("failed to filter task %d: ragged prediction row %d", task, i)
			}
			taskScores[i] = row[task]
		}

		correct[task] = Correct(taskLabels, taskScores, posThreshold, negThreshold)
	}

	return correct, nil
}
