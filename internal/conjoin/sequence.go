package conjoin

// complement maps each nucleotide to its complement, case preserved.
// No support for RNA. Anything outside {A,C,G,T,N} in either case is
// passed through untranslated.
var complement = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'N': 'N',
	'a': 't',
	'c': 'g',
	'g': 'c',
	't': 'a',
	'n': 'n',
}

// reverseComplement returns the reverse complement of a DNA sequence
//
// reverseComplement("AaGgCcTtNn") == "nNaAgGcCtT"
func reverseComplement(seq string) string {
	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complement[seq[i]]
		if !ok {
			c = seq[i]
		}
		comp[i] = c
	}

	for i, j := 0, len(comp)-1; i < j; i, j = i+1, j-1 {
		comp[i], comp[j] = comp[j], comp[i]
	}

	return string(comp)
}
