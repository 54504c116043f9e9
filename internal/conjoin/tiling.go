package conjoin

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Placement is one contig instance tiled along the reference. It is one
// data row of MUMmer's show-tiling report:
//
// Standard output has an 8 column list per mapped contig, separated by
// the FASTA headers of each reference sequence: [1] start in the
// reference [2] end in the reference [3] gap between this contig and the
// next [4] length of this contig [5] alignment coverage [6] average
// percent identity [7] contig orientation [8] contig ID.
type Placement struct {
	// name of the reference sequence this placement belongs to
	RefName string

	// covered interval on the reference, 0-based half-open
	RefStart int
	RefEnd   int

	// distance in reference bases to the next placement, negative = overlap
	GapToNext int

	// reported alignment length of the contig
	Length int

	// alignment coverage and percent identity, informational only
	Coverage float64
	Identity float64

	// false when the contig aligns reverse-complemented
	Forward bool

	// contig name, used to look up its sequence
	Name string
}

// tilingScanner streams Placements out of a show-tiling report. It is
// forward-only and non-restartable: records are parsed one line at a
// time as Next is called.
type tilingScanner struct {
	scanner *bufio.Scanner

	// reference name from the last ">" header seen
	refName string

	// 1-based line number for error reporting
	line int
}

func newTilingScanner(r io.Reader) *tilingScanner {
	return &tilingScanner{scanner: bufio.NewScanner(r)}
}

// Next returns the next placement in the report, or io.EOF when the
// report is exhausted.
func (t *tilingScanner) Next() (*Placement, error) {
	for t.scanner.Scan() {
		t.line++
		line := strings.TrimRight(t.scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, &FormatError{t.line, line, "empty reference header"}
			}
			t.refName = fields[0]
			continue
		}

		return t.parseRecord(line)
	}

	if err := t.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// parseRecord parses one 8-column tab-separated tiling row. The 1-based
// inclusive reference start becomes 0-based by subtracting 1; the
// inclusive end doubles as the 0-based exclusive end.
func (t *tilingScanner) parseRecord(line string) (*Placement, error) {
	if t.refName == "" {
		return nil, &FormatError{t.line, line, "record before any reference header"}
	}

	cols := strings.Split(line, "\t")
	if len(cols) != 8 {
		return nil, &FormatError{t.line, line, "expected 8 tab-separated fields, got " + strconv.Itoa(len(cols))}
	}

	p := &Placement{RefName: t.refName, Name: cols[7]}

	ints := []struct {
		val  *int
		col  int
		name string
	}{
		{&p.RefStart, 0, "reference start"},
		{&p.RefEnd, 1, "reference end"},
		{&p.GapToNext, 2, "gap to next"},
		{&p.Length, 3, "contig length"},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(cols[f.col])
		if err != nil {
			return nil, &FormatError{t.line, line, "non-numeric " + f.name}
		}
		*f.val = v
	}

	floats := []struct {
		val  *float64
		col  int
		name string
	}{
		{&p.Coverage, 4, "alignment coverage"},
		{&p.Identity, 5, "percent identity"},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(cols[f.col], 64)
		if err != nil {
			return nil, &FormatError{t.line, line, "non-numeric " + f.name}
		}
		*f.val = v
	}

	switch cols[6] {
	case "+":
		p.Forward = true
	case "-":
		p.Forward = false
	default:
		return nil, &FormatError{t.line, line, "orientation must be + or -"}
	}

	// convert 1-based inclusive start to 0-based
	p.RefStart--

	if p.RefStart > p.RefEnd {
		return nil, &FormatError{t.line, line, "reference start past reference end"}
	}

	return p, nil
}
