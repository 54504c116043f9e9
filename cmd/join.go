package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srividya22/simple-contig-joiner/internal/conjoin"
)

// joinCmd tiles contigs along a reference and emits one joined sequence
var joinCmd = &cobra.Command{
	Use:                        "join",
	Short:                      "Join contigs into a single sequence against a reference",
	Run:                        conjoin.JoinCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Join assembled contigs into one linear sequence using a reference.

The contigs are aligned against the reference with MUMmer's nucmer and
tiled along it with show-tiling. Gaps between successive contigs are
filled with the matching reference slice; overlapping contigs are clipped
at their trailing end (all contigs are assumed equally reliable). The
joined sequence is written as a single FASTA record named "joined".`,
}

// set flags
func init() {
	joinCmd.Flags().StringP("contigs", "c", "", "input file containing contigs to join (FASTA)")
	joinCmd.Flags().StringP("ref", "r", "", "reference sequence file (FASTA)")
	joinCmd.Flags().StringP("out", "o", "-", "output file (FASTA; '-' = stdout)")
	joinCmd.Flags().String("tmp-dir", "", "directory to save temp files in")
	joinCmd.Flags().Bool("keep-tmp-files", false, "don't delete temporary files")
	joinCmd.Flags().BoolP("dont-fill-with-ref", "n", false, "don't fill gaps with reference (keep Ns)")

	joinCmd.MarkFlagRequired("contigs")
	joinCmd.MarkFlagRequired("ref")

	viper.BindPFlag("tmp-dir", joinCmd.Flags().Lookup("tmp-dir"))
	viper.BindPFlag("keep-tmp-files", joinCmd.Flags().Lookup("keep-tmp-files"))

	rootCmd.AddCommand(joinCmd)
}
