package filter

import (
	"strings"
)

// IsShort reports whether the read is shorter than minLen.
func IsShort(seq string, minLen int) bool {
	return len(seq) < minLen
}

// IsS35Bad is the quality window (s35) filter: from the 5' end, at least 25
// of the first 35 bases must have quality scores of at least 30. Reads
// shorter than 35 fail outright. Exactly the first 35 positions are
// inspected regardless of read length.
func IsS35Bad(qual string, offset int) bool {
	if len(qual) < 35 {
		return true
	}
	var q30 = 0
	for i := 0; i < 35; i++ {
		if int(qual[i])-offset >= 30 {
			q30++
		}
	}
	return q30 < 25
}

// HasN is the ambiguous base (Ns) filter. Only uppercase N counts, a
// lowercase n passes; this mirrors the original tool and is kept as is.
func HasN(seq string) bool {
	return strings.Contains(seq, "N")
}

// IsPolyN is the low complexity (polyN) filter: the read fails when any
// single base of A, T, C, G reaches limit of the read length. An empty
// sequence is treated as low complexity; with the default MinLen of 1 the
// length filter catches it first anyway.
func IsPolyN(seq string, limit float64) bool {
	if len(seq) == 0 {
		return true
	}
	for _, base := range []string{"A", "T", "C", "G"} {
		if float64(strings.Count(seq, base))/float64(len(seq)) >= limit {
			return true
		}
	}
	return false
}
