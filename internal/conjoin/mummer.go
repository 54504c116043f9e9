package conjoin

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// mummerExec is a small utility struct for running MUMmer's nucmer and
// show-tiling on a reference/contigs pair
type mummerExec struct {
	// path to the reference FASTA
	ref string

	// path to the contigs FASTA
	contigs string

	// prefix for nucmer's output files
	prefix string

	// the nucmer and show-tiling executables
	nucmer     string
	showTiling string
}

// lookPath checks that both MUMmer binaries are resolvable before any
// work begins
func (m *mummerExec) lookPath() error {
	for _, tool := range []string{m.nucmer, m.showTiling} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%q not in PATH: %w", tool, ErrToolMissing)
		}
	}
	return nil
}

// align runs nucmer on the reference and the contigs and returns the path
// to the resulting delta file
func (m *mummerExec) align() (delta string, err error) {
	delta = m.prefix + ".delta"
	args := []string{m.nucmer, m.ref, m.contigs, "-p", m.prefix}
	log.Debugf("calling %v", args)

	out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return "", &ToolError{Cmd: args, Output: string(out), Err: err}
	}
	if _, err := os.Stat(delta); err != nil {
		return "", &ToolError{Cmd: args, Output: string(out), Err: fmt.Errorf("expected file %s missing", delta)}
	}

	return delta, nil
}

// tile runs show-tiling on a delta file. show-tiling writes a pseudo
// molecule (contigs tiled with N filler) to a FASTA and the tiling report
// to stdout; the report is persisted verbatim next to the delta file.
// Returns the pseudo-molecule and tiling-report paths.
func (m *mummerExec) tile(delta string) (pseudo, tiling string, err error) {
	pseudo = delta + ".pseudo.fa"
	tiling = delta + ".tiling.txt"
	args := []string{m.showTiling, "-p", pseudo, delta}
	log.Debugf("calling %v", args)

	cmd := exec.Command(args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", "", &ToolError{Cmd: args, Output: stderr.String(), Err: err}
	}
	if _, err := os.Stat(pseudo); err != nil {
		return "", "", &ToolError{Cmd: args, Output: stderr.String(), Err: fmt.Errorf("expected file %s missing", pseudo)}
	}

	if err := os.WriteFile(tiling, stdout.Bytes(), 0644); err != nil {
		return "", "", fmt.Errorf("failed to persist tiling report: %w", err)
	}

	log.Infof("pseudo molecule written to %s", pseudo)
	log.Infof("tiling info written to %s", tiling)
	return pseudo, tiling, nil
}
