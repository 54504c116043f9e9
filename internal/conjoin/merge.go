package conjoin

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// merge stitches the tiled contigs and the reference into one joined
// sequence, written incrementally to out as a single FASTA record.
//
// Placements are consumed in report order. A gap between the last covered
// reference position and the next placement is filled with the matching
// reference slice. A negative gap to the next placement clips the current
// contig's trailing bases; the overlap is always resolved against the
// current contig, which assumes all contigs are equally good. After the
// last placement the uncovered reference tail is appended.
func merge(contigs, refs map[string]string, tiling *tilingScanner, out io.Writer) error {
	if _, err := io.WriteString(out, ">joined\n"); err != nil {
		return err
	}

	lastRefEnd := 0 // exclusive
	lastRefName := ""
	placed := 0
	for {
		p, err := tiling.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		refSeq, ok := refs[p.RefName]
		if !ok {
			return fmt.Errorf("tiling reference %q: %w", p.RefName, ErrReferenceNotFound)
		}
		if lastRefName != "" && p.RefName != lastRefName {
			return fmt.Errorf("tiling switches from %q to %q: %w", lastRefName, p.RefName, ErrMultiReference)
		}
		lastRefName = p.RefName

		// if there was a gap before this contig, fill with reference
		if p.RefStart > lastRefEnd {
			log.Debugf("ref %d:%d", lastRefEnd, p.RefStart)
			if _, err := io.WriteString(out, refSeq[lastRefEnd:p.RefStart]); err != nil {
				return err
			}
		}

		seq, ok := contigs[p.Name]
		if !ok {
			return fmt.Errorf("tiled contig %q: %w", p.Name, ErrContigNotFound)
		}
		if !p.Forward {
			seq = reverseComplement(seq)
		}

		// an overlap with the next contig clips the current one
		end := len(seq)
		if p.GapToNext < 0 {
			end += p.GapToNext
			if end < 0 {
				end = 0 // overlap swallows the whole contig
			}
		}
		log.Debugf("contig %s 0:%d", p.Name, end)
		if _, err := io.WriteString(out, seq[:end]); err != nil {
			return err
		}

		lastRefEnd = p.RefEnd
		placed++
	}

	if placed == 0 {
		return ErrEmptyTiling
	}

	if refSeq := refs[lastRefName]; lastRefEnd < len(refSeq) {
		log.Debugf("ref %d:", lastRefEnd)
		if _, err := io.WriteString(out, refSeq[lastRefEnd:]); err != nil {
			return err
		}
	}

	_, err := io.WriteString(out, "\n")
	return err
}
