// Package conjoin stitches assembled contigs into one linear sequence
// against a single reference. MUMmer's nucmer aligns the contigs to the
// reference and show-tiling orders them along it; the gaps the tiling
// leaves uncovered are filled with the matching reference slices.
package conjoin

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/srividya22/simple-contig-joiner/config"
)

// JoinCmd is the entry for the `conjoin join` command.
func JoinCmd(cmd *cobra.Command, args []string) {
	flags, err := parseJoinFlags(cmd)
	if err != nil {
		log.Fatal(err)
	}

	if err := Join(flags, config.New()); err != nil {
		log.Fatal(err)
	}
}

// Join runs the whole pipeline: align the contigs against the reference,
// tile them, and emit the joined sequence.
func Join(f *Flags, c config.Config) error {
	m := newMummerExec(f, c)
	if err := m.lookPath(); err != nil {
		return err
	}

	prefix, err := tmpPrefix(c.TmpDir)
	if err != nil {
		return err
	}
	m.prefix = prefix

	tmpFiles := []string{m.prefix}
	defer func() {
		if c.KeepTmpFiles {
			log.Info("not deleting temp files")
			return
		}
		for _, t := range tmpFiles {
			os.Remove(t)
		}
	}()

	delta, err := m.align()
	if err != nil {
		return err
	}
	tmpFiles = append(tmpFiles, delta)
	log.Infof("delta written to %s", delta)

	pseudo, tiling, err := m.tile(delta)
	if err != nil {
		return err
	}
	tmpFiles = append(tmpFiles, pseudo, tiling)

	if !f.fillWithRef {
		log.Infof("not replacing gaps with ref, copying pseudo molecule to %s", f.out)
		return copyOut(pseudo, f.out)
	}

	refs, err := readFasta(f.ref)
	if err != nil {
		return err
	}
	if len(refs) != 1 {
		return fmt.Errorf("%d sequences in %s, only one reference supported for gap filling: %w",
			len(refs), f.ref, ErrMultiReference)
	}

	contigs, err := readFasta(f.contigs)
	if err != nil {
		return err
	}

	return writeJoined(contigs, refs, tiling, f.out)
}

// writeJoined merges the tiled contigs into the output destination. When
// the destination is a real file and the tiling turns out to be empty,
// the partly written file is removed rather than left behind.
func writeJoined(contigs, refs map[string]string, tilingPath, out string) error {
	tilingFile, err := os.Open(tilingPath)
	if err != nil {
		return err
	}
	defer tilingFile.Close()
	scanner := newTilingScanner(tilingFile)

	if out == "-" {
		return merge(contigs, refs, scanner, os.Stdout)
	}

	outFile, err := os.Create(out)
	if err != nil {
		return err
	}

	mergeErr := merge(contigs, refs, scanner, outFile)
	if err := outFile.Close(); mergeErr == nil {
		mergeErr = err
	}
	if errors.Is(mergeErr, ErrEmptyTiling) {
		os.Remove(out)
	}
	return mergeErr
}

// copyOut copies the pseudo-molecule FASTA verbatim to the output
// destination. Used when reference gap filling is disabled.
func copyOut(src, out string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if out == "-" {
		_, err = io.Copy(os.Stdout, in)
		return err
	}

	outFile, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err = io.Copy(outFile, in); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}
