package conjoin

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srividya22/simple-contig-joiner/config"
)

// Flags contains parsed cobra flags like "contigs", "ref", "out" that
// drive a join run.
type Flags struct {
	// the contigs FASTA to join
	contigs string

	// the reference FASTA to tile against
	ref string

	// the output destination ("-" = stdout)
	out string

	// whether to fill gaps between contigs with the reference sequence
	// (false copies show-tiling's N-filled pseudo molecule instead)
	fillWithRef bool
}

// parseJoinFlags gathers the join flags from a cobra cmd object and
// validates the run's preconditions.
func parseJoinFlags(cmd *cobra.Command) (*Flags, error) {
	f := &Flags{}
	var err error

	if f.contigs, err = cmd.Flags().GetString("contigs"); err != nil {
		return nil, fmt.Errorf("failed to parse contigs flag: %v", err)
	}
	if f.ref, err = cmd.Flags().GetString("ref"); err != nil {
		return nil, fmt.Errorf("failed to parse ref flag: %v", err)
	}
	if f.out, err = cmd.Flags().GetString("out"); err != nil || f.out == "" {
		f.out = "-"
	}

	noFill, err := cmd.Flags().GetBool("dont-fill-with-ref")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dont-fill-with-ref flag: %v", err)
	}
	f.fillWithRef = !noFill

	return f, f.validate()
}

// validate checks the input files exist and refuses to overwrite an
// existing output file.
func (f *Flags) validate() error {
	for _, in := range []string{f.ref, f.contigs} {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("input file %q does not exist: %w", in, ErrPrecondition)
		}
	}

	if f.out != "-" {
		if _, err := os.Stat(f.out); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %q: %w", f.out, ErrPrecondition)
		}
	}

	return nil
}

// newMummerExec wires the flags and settings into a MUMmer run. The
// temp-file prefix is created later, once the binaries are known to exist.
func newMummerExec(f *Flags, c config.Config) *mummerExec {
	return &mummerExec{
		ref:        f.ref,
		contigs:    f.contigs,
		nucmer:     c.Tools.Nucmer,
		showTiling: c.Tools.ShowTiling,
	}
}

// tmpPrefix creates a fresh temp file under dir ("" = system default)
// whose name serves as nucmer's output prefix.
func tmpPrefix(dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, "conjoin")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file prefix: %w", err)
	}
	tmp.Close()
	return tmp.Name(), nil
}
