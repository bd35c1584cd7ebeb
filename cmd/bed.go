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

// bedCmd maps BED intervals into fixed-length windows, each with a
// flank response region around the interval
var bedCmd = &cobra.Command{
	Use:   "bed",
	Short: "Window BED intervals with a flank response region",
	Long: `Pad each interval of a BED table to a fixed window length, extract and
one-hot encode its sequence from a reference genome, and map the interval
and its flank response region into window-relative coordinates.

The pad is split into symmetric halves; an odd pad gives the extra base
to the upstream flank.`,
	Run: runBed,
}

// set flags
func init() {
	RootCmd.AddCommand(bedCmd)

	bedCmd.Flags().StringP("bed", "b", "", "input interval table <BED>")
	bedCmd.Flags().StringP("genome", "g", "", "reference genome <FASTA>")
	bedCmd.Flags().StringP("out", "o", "", "output file name")
	bedCmd.Flags().IntP("length", "l", 1000, "window length to pad each interval to")
	bedCmd.Flags().IntP("flank", "f", 15, "bases added around the interval for its response region")
	bedCmd.Flags().Bool("fasta", false, "include raw window sequences in the output")
	bedCmd.Flags().Bool("tensors", false, "include one-hot window tensors in the output")
	bedCmd.MarkFlagRequired("bed")
	bedCmd.MarkFlagRequired("genome")
}

func runBed(cmd *cobra.Command, args []string) {
	start := time.Now()
	c := config.New()
	windowLength, flankSize := windowFlags(cmd, c)

	bedPath, _ := cmd.Flags().GetString("bed")
	genomePath, _ := cmd.Flags().GetString("genome")
	out, _ := cmd.Flags().GetString("out")
	keepRaw, _ := cmd.Flags().GetBool("fasta")
	keepTensors, _ := cmd.Flags().GetBool("tensors")

	intervals, err := interval.ReadBED(bedPath)
	if err != nil {
		stderr.Fatalf("failed to read intervals: %v", err)
	}
	logrus.Debugf("read %d intervals from %s", len(intervals), bedPath)

	g, err := genome.Load(genomePath)
	if err != nil {
		stderr.Fatalf("failed to load genome: %v", err)
	}

	windows, records, err := locations.MapFlanked(intervals, g, windowLength, flankSize, keepRaw)
	if err != nil {
		stderr.Fatalf("failed to map intervals: %v", err)
	}
	logrus.Debugf("mapped %d windows", len(windows))

	output := newOutput(start)
	output.WindowLength = windowLength
	output.FlankSize = flankSize
	output.Records = records
	output.addWindows(windows, keepRaw, keepTensors)

	write(out, output)
}

// windowFlags resolves window length and flank size: a flag set on the
// command wins over the settings file
func windowFlags(cmd *cobra.Command, c *config.Config) (windowLength, flankSize int) {
	windowLength = c.Window.Length
	if cmd.Flags().Changed("length") {
		windowLength, _ = cmd.Flags().GetInt("length")
	}

	flankSize = c.Window.Flank
	if cmd.Flags().Changed("flank") {
		flankSize, _ = cmd.Flags().GetInt("flank")
	}

	return windowLength, flankSize
}
