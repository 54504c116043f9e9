package conjoin

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// record builds one tab-separated tiling row with neutral quality columns.
func record(start, end, gap int, ori, name string) string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t100.00\t100.00\t%s\t%s\n",
		start, end, gap, end-start+1, ori, name)
}

func runMerge(t *testing.T, contigs, refs map[string]string, report string) (string, error) {
	t.Helper()

	var out strings.Builder
	err := merge(contigs, refs, newTilingScanner(strings.NewReader(report)), &out)
	return out.String(), err
}

func Test_merge(t *testing.T) {
	tests := []struct {
		name    string
		contigs map[string]string
		refs    map[string]string
		report  string
		want    string
	}{
		{
			"reference fully covered by one contig",
			map[string]string{"contig1": "ACGTACGTAC"},
			map[string]string{"ref1": "ACGTACGTAC"},
			">ref1\n" + record(1, 10, 0, "+", "contig1"),
			">joined\nACGTACGTAC\n",
		},
		{
			"gap before the first contig filled from reference",
			map[string]string{"contig1": "TTTTT"},
			map[string]string{"ref1": "AAAAACCCCC"},
			">ref1\n" + record(6, 10, 0, "+", "contig1"),
			">joined\nAAAAATTTTT\n",
		},
		{
			"trailing reference appended after the last contig",
			map[string]string{"contig1": "TTTTT"},
			map[string]string{"ref1": "AAAAATTTTTGGGGG"},
			">ref1\n" + record(6, 10, 0, "+", "contig1"),
			">joined\nAAAAATTTTTGGGGG\n",
		},
		{
			"negative gap clips the current contig's tail",
			map[string]string{"contig1": "AAATTT", "contig2": "TTTGGG"},
			map[string]string{"ref1": "AAATTTGGG"},
			">ref1\n" +
				record(1, 6, -3, "+", "contig1") +
				record(4, 9, 0, "+", "contig2"),
			">joined\nAAATTTGGG\n",
		},
		{
			"reverse placement emits the reverse complement",
			map[string]string{"contig1": "AAACC"},
			map[string]string{"ref1": "GGTTT"},
			">ref1\n" + record(1, 5, 0, "-", "contig1"),
			">joined\nGGTTT\n",
		},
		{
			"reverse placement is clipped after reverse complementing",
			map[string]string{"contig1": "AAACC"},
			map[string]string{"ref1": "GGTTTTT"},
			">ref1\n" +
				record(1, 3, -2, "-", "contig1") +
				record(2, 7, 0, "+", "contig1"),
			">joined\nGGTAAACC\n",
		},
		{
			"overlap longer than the contig emits nothing for it",
			map[string]string{"contig1": "ACG", "contig2": "ACGTACGT"},
			map[string]string{"ref1": "ACGTACGT"},
			">ref1\n" +
				record(1, 3, -5, "+", "contig1") +
				record(1, 8, 0, "+", "contig2"),
			">joined\nACGTACGT\n",
		},
		{
			"mid-reference gap filled between two contigs",
			map[string]string{"contig1": "AA", "contig2": "GG"},
			map[string]string{"ref1": "AACCTTGG"},
			">ref1\n" +
				record(1, 2, 4, "+", "contig1") +
				record(7, 8, 0, "+", "contig2"),
			">joined\nAACCTTGG\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runMerge(t, tt.contigs, tt.refs, tt.report)
			if err != nil {
				t.Fatalf("merge() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("merge() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_merge_endToEnd(t *testing.T) {
	// a 15 base reference with the middle third covered by one contig:
	// both uncovered thirds come from the reference
	contigs := map[string]string{"contig1": "TTTTT"}
	refs := map[string]string{"ref1": "AAAAATTTTTGGGGG"}
	report := ">ref1\n" + record(6, 10, 0, "+", "contig1")

	got, err := runMerge(t, contigs, refs, report)
	if err != nil {
		t.Fatalf("merge() error = %v", err)
	}
	if want := ">joined\nAAAAATTTTTGGGGG\n"; got != want {
		t.Errorf("merge() wrote %q, want %q", got, want)
	}
}

func Test_merge_errors(t *testing.T) {
	tests := []struct {
		name    string
		contigs map[string]string
		refs    map[string]string
		report  string
		wantErr error
	}{
		{
			"zero placements",
			map[string]string{"contig1": "ACGT"},
			map[string]string{"ref1": "ACGT"},
			">ref1\n",
			ErrEmptyTiling,
		},
		{
			"reference missing from the map",
			map[string]string{"contig1": "ACGT"},
			map[string]string{"ref1": "ACGT"},
			">other\n" + record(1, 4, 0, "+", "contig1"),
			ErrReferenceNotFound,
		},
		{
			"two references in one tiling",
			map[string]string{"contig1": "ACGT", "contig2": "ACGT"},
			map[string]string{"ref1": "ACGT", "ref2": "ACGT"},
			">ref1\n" + record(1, 4, 0, "+", "contig1") +
				">ref2\n" + record(1, 4, 0, "+", "contig2"),
			ErrMultiReference,
		},
		{
			"contig missing from the map",
			map[string]string{},
			map[string]string{"ref1": "ACGT"},
			">ref1\n" + record(1, 4, 0, "+", "contig1"),
			ErrContigNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runMerge(t, tt.contigs, tt.refs, tt.report)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("merge() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_merge_formatErrorPropagates(t *testing.T) {
	report := ">ref1\n1\t4\t0\t4\t100.00\t100.00\t*\tcontig1\n"

	_, err := runMerge(t,
		map[string]string{"contig1": "ACGT"},
		map[string]string{"ref1": "ACGT"},
		report)

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Errorf("merge() error = %v, want a *FormatError", err)
	}
}
