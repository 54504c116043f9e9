package conjoin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolMissing means an external MUMmer binary could not be found
	ErrToolMissing = errors.New("external tool not found")

	// ErrEmptyTiling means show-tiling placed zero contigs: nothing to join
	ErrEmptyTiling = errors.New("empty tiling: nothing to join")

	// ErrMultiReference means the tiling spans more than one reference sequence
	ErrMultiReference = errors.New("no support for multiple references")

	// ErrReferenceNotFound means a tiled reference name is absent from the reference FASTA
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrContigNotFound means a tiled contig name is absent from the contigs FASTA
	ErrContigNotFound = errors.New("contig not found")

	// ErrPrecondition means an input file is missing or the output already exists
	ErrPrecondition = errors.New("precondition failed")
)

// FormatError is a malformed line in a tiling report
type FormatError struct {
	// 1-based line number within the report
	Line int

	// the offending line, verbatim
	Text string

	// what was wrong with it
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tiling line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ToolError is a failed external tool invocation: a non-zero exit or a
// missing expected output file
type ToolError struct {
	// the command that was run, argv style
	Cmd []string

	// the tool's captured output
	Output string

	// the underlying exec error, if any
	Err error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("command failed: %s", strings.Join(e.Cmd, " "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
