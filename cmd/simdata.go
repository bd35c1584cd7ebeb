package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samridhim/dfim/internal/genome"
	"github.com/samridhim/dfim/internal/interval"
	"github.com/samridhim/dfim/internal/locations"
)

// simdataCmd decodes synthetic motif placements into location records
var simdataCmd = &cobra.Command{
	Use:   "simdata",
	Short: "Decode synthetic motif placements into location records",
	Long: `Extract and encode the sequence of every interval of a BED table, then
decode the matching simdata table's embeddings column: one record per
placed motif, with every sibling placement in the same sequence as a
response region.

Placements are comma-separated "pos-<start>_<name>-<bases>" tokens; the
simdata table may be gzip-compressed. Rows without embeddings are skipped.`,
	Run: runSimdata,
}

// set flags
func init() {
	RootCmd.AddCommand(simdataCmd)

	simdataCmd.Flags().StringP("bed", "b", "", "input interval table <BED>")
	simdataCmd.Flags().StringP("genome", "g", "", "reference genome <FASTA>")
	simdataCmd.Flags().StringP("simdata", "d", "", "synthetic-data table with an embeddings column <TSV, optionally .gz>")
	simdataCmd.Flags().StringP("out", "o", "", "output file name")
	simdataCmd.Flags().Bool("fasta", false, "include raw window sequences in the output")
	simdataCmd.Flags().Bool("tensors", false, "include one-hot window tensors in the output")
	simdataCmd.MarkFlagRequired("bed")
	simdataCmd.MarkFlagRequired("genome")
	simdataCmd.MarkFlagRequired("simdata")
}

func runSimdata(cmd *cobra.Command, args []string) {
	start := time.Now()

	bedPath, _ := cmd.Flags().GetString("bed")
	genomePath, _ := cmd.Flags().GetString("genome")
	simdataPath, _ := cmd.Flags().GetString("simdata")
	out, _ := cmd.Flags().GetString("out")
	keepRaw, _ := cmd.Flags().GetBool("fasta")
	keepTensors, _ := cmd.Flags().GetBool("tensors")

	intervals, err := interval.ReadBED(bedPath)
	if err != nil {
		stderr.Fatalf("failed to read intervals: %v", err)
	}

	g, err := genome.Load(genomePath)
	if err != nil {
		stderr.Fatalf("failed to load genome: %v", err)
	}

	windows, err := genome.Windows(g, intervals, keepRaw)
	if err != nil {
		stderr.Fatalf("failed to extract windows: %v", err)
	}
	logrus.Debugf("extracted %d windows", len(windows))

	rows, err := locations.ReadSimdata(simdataPath)
	if err != nil {
		stderr.Fatalf("failed to read simdata: %v", err)
	}

	records, err := locations.Decode(windows, rows)
	if err != nil {
		stderr.Fatalf("failed to decode simdata: %v", err)
	}
	logrus.Debugf("decoded %d records", len(records))

	output := newOutput(start)
	output.Records = records
	output.addWindows(windows, keepRaw, keepTensors)

	write(out, output)
}
