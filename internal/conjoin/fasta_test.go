package conjoin

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_readFasta(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     map[string]string
		wantErr  bool
	}{
		{
			"single record",
			">chr1\nACGT\n",
			map[string]string{"chr1": "ACGT"},
			false,
		},
		{
			"wrapped sequence lines",
			">chr1 some description\nACGT\nTTAA\nGG\n",
			map[string]string{"chr1": "ACGTTTAAGG"},
			false,
		},
		{
			"multiple records, names are first tokens",
			">contig1 len=4\nACGT\n>contig2\nTT\nAA\n",
			map[string]string{"contig1": "ACGT", "contig2": "TTAA"},
			false,
		},
		{
			"windows line endings",
			">chr1\r\nACGT\r\n",
			map[string]string{"chr1": "ACGT"},
			false,
		},
		{
			"no records",
			"ACGT\n",
			nil,
			true,
		},
		{
			"unnamed record",
			">\nACGT\n",
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.fa")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := readFasta(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readFasta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("readFasta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_readFasta_missingFile(t *testing.T) {
	if _, err := readFasta(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Error("readFasta() on a missing file returned no error")
	}
}
