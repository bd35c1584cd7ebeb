package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samridhim/dfim/config"
	"github.com/samridhim/dfim/internal/predict"
)

// predictionsCmd filters a prediction matrix for correct calls per task
var predictionsCmd = &cobra.Command{
	Use:   "predictions",
	Short: "Filter model predictions for correctly called examples",
	Long: `For every task (column) of a prediction matrix, list the indices of
correct calls: positives scoring above the positive threshold and, when
a negative threshold is set, negatives scoring below it.

Task labels are read from the label table at a fixed column offset from
the task index.`,
	Run: runPredictions,
}

// set flags
func init() {
	RootCmd.AddCommand(predictionsCmd)

	predictionsCmd.Flags().StringP("predictions", "p", "", "prediction matrix, one column per task <TSV>")
	predictionsCmd.Flags().StringP("labels", "t", "", "label table with per-task 0/1 columns <TSV>")
	predictionsCmd.Flags().StringP("out", "o", "", "output file name")
	predictionsCmd.Flags().Float64("pos-threshold", 0.5, "positives must score above this")
	predictionsCmd.Flags().Float64("neg-threshold", -1, "negatives must score below this; negative disables")
	predictionsCmd.Flags().Int("key-column", 3, "last of the leading non-label columns in the label table")
	predictionsCmd.MarkFlagRequired("predictions")
	predictionsCmd.MarkFlagRequired("labels")
}

func runPredictions(cmd *cobra.Command, args []string) {
	start := time.Now()
	c := config.New()

	predictionsPath, _ := cmd.Flags().GetString("predictions")
	labelsPath, _ := cmd.Flags().GetString("labels")
	out, _ := cmd.Flags().GetString("out")

	posThreshold := c.Predict.PosThreshold
	if cmd.Flags().Changed("pos-threshold") {
		posThreshold, _ = cmd.Flags().GetFloat64("pos-threshold")
	}

	negValue := c.Predict.NegThreshold
	if cmd.Flags().Changed("neg-threshold") {
		negValue, _ = cmd.Flags().GetFloat64("neg-threshold")
	}
	var negThreshold *float64
	if negValue >= 0 {
		negThreshold = &negValue
	}

	keyColumn := c.Predict.LabelKeyColumn
	if cmd.Flags().Changed("key-column") {
		keyColumn, _ = cmd.Flags().GetInt("key-column")
	}

	predictions, err := predict.ReadPredictions(predictionsPath)
	if err != nil {
		stderr.Fatalf("failed to read predictions: %v", err)
	}

	labels, err := predict.ReadLabelTable(labelsPath, keyColumn)
	if err != nil {
		stderr.Fatalf("failed to read labels: %v", err)
	}

	correct, err := predict.CorrectPerTask(predictions, labels, posThreshold, negThreshold)
	if err != nil {
		stderr.Fatalf("failed to filter predictions: %v", err)
	}
	logrus.Debugf("filtered %d tasks", len(correct))

	output := newOutput(start)
	output.Correct = correct

	write(out, output)
}
