package conjoin

import (
	"fmt"
	"os"
	"strings"
)

// readFasta reads a FASTA file (by its path on the local FS) to a map from
// sequence name to sequence. The name is the first whitespace-delimited
// token after the ">" of each header; sequence lines between headers are
// concatenated into one string without line breaks.
func readFasta(path string) (seqs map[string]string, err error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FASTA file: %w", err)
	}

	seqs = make(map[string]string)
	name := ""
	var seq strings.Builder
	for _, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ">") {
			if name != "" {
				seqs[name] = seq.String()
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("unnamed FASTA record in %s", path)
			}
			name = fields[0]
			seq.Reset()
			continue
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	if name != "" {
		seqs[name] = seq.String()
	}

	// opened and parsed file but found nothing
	if len(seqs) < 1 {
		return nil, fmt.Errorf("failed to parse any sequence from %s", path)
	}

	return seqs, nil
}
