package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samridhim/dfim/config"
	"github.com/samridhim/dfim/internal/genome"
	"github.com/samridhim/dfim/internal/interval"
	"github.com/samridhim/dfim/internal/locations"
)

// labelsCmd windows BED intervals and maps overlapping labeled features
// into them
var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Window BED intervals against an overlapping label table",
	Long: `Join a label table against a BED table on coordinate overlap, then window
every joined pair. The window is padded and centered on the interval while
the mutation region comes from the label's feature coordinates, with a
flank response region around the feature.

Label tables are tab-delimited: chrom, start, end, feature_start,
feature_end. Zero overlaps produce an empty result.`,
	Run: runLabels,
}

// set flags
func init() {
	RootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringP("bed", "b", "", "input interval table <BED>")
	labelsCmd.Flags().StringP("labels", "t", "", "label table with feature coordinates <TSV>")
	labelsCmd.Flags().StringP("genome", "g", "", "reference genome <FASTA>")
	labelsCmd.Flags().StringP("out", "o", "", "output file name")
	labelsCmd.Flags().IntP("length", "l", 1000, "window length to pad each interval to")
	labelsCmd.Flags().IntP("flank", "f", 15, "bases added around the feature for its response region")
	labelsCmd.Flags().Bool("fasta", false, "include raw window sequences in the output")
	labelsCmd.Flags().Bool("tensors", false, "include one-hot window tensors in the output")
	labelsCmd.MarkFlagRequired("bed")
	labelsCmd.MarkFlagRequired("labels")
	labelsCmd.MarkFlagRequired("genome")
}

func runLabels(cmd *cobra.Command, args []string) {
	start := time.Now()
	c := config.New()
	windowLength, flankSize := windowFlags(cmd, c)

	bedPath, _ := cmd.Flags().GetString("bed")
	labelsPath, _ := cmd.Flags().GetString("labels")
	genomePath, _ := cmd.Flags().GetString("genome")
	out, _ := cmd.Flags().GetString("out")
	keepRaw, _ := cmd.Flags().GetBool("fasta")
	keepTensors, _ := cmd.Flags().GetBool("tensors")

	intervals, err := interval.ReadBED(bedPath)
	if err != nil {
		stderr.Fatalf("failed to read intervals: %v", err)
	}

	labels, err := interval.ReadLabels(labelsPath)
	if err != nil {
		stderr.Fatalf("failed to read labels: %v", err)
	}
	logrus.Debugf("read %d intervals and %d labels", len(intervals), len(labels))

	g, err := genome.Load(genomePath)
	if err != nil {
		stderr.Fatalf("failed to load genome: %v", err)
	}

	windows, records, err := locations.MapLabeled(intervals, labels, g, windowLength, flankSize, keepRaw)
	if err != nil {
		stderr.Fatalf("failed to map labels: %v", err)
	}
	logrus.Debugf("mapped %d joined windows", len(windows))

	output := newOutput(start)
	output.WindowLength = windowLength
	output.FlankSize = flankSize
	output.Records = records
	output.addWindows(windows, keepRaw, keepTensors)

	write(out, output)
}
