package filter

// maxCycle caps the per-cycle tallies, matching SE150/PE150 read lengths.
const maxCycle = 151

// PolyNLimit is the default low-complexity threshold: a read where one base
// reaches 85% of the length is dropped.
const PolyNLimit = 0.85

// Config is the immutable per-run filter configuration.
//
// Offset is the quality encoding offset and must be 33 or 64. S35, Ns and
// PolyN switch the quality window, ambiguous base and low complexity filters;
// all three default on in the CLI. Adapters, when non-empty, enables the
// adapter filter (sequences are matched together with their reverse
// complements).
type Config struct {
	Offset int
	MinLen int

	S35   bool
	Ns    bool
	PolyN bool

	PolyNLimit float64
	Adapters   []string
}

// Stats accumulates one run's counters. It is owned by the Pipeline, never
// package state, so independent runs cannot cross-contaminate.
//
// A dropped pair is charged to exactly one filter, the first failing one in
// order; retained counts are derived at report time as total minus all drops.
type Stats struct {
	TotalReads int
	TotalBases int

	MinLenDropReads int
	MinLenDropBases int

	S35DropReads int
	S35DropBases int

	NsDropReads int
	NsDropBases int

	PolyNDropReads int
	PolyNDropBases int

	AdapterDropReads int
	AdapterDropBases int

	// per-cycle tallies of retained reads, for plots
	A     [maxCycle]int
	C     [maxCycle]int
	G     [maxCycle]int
	T     [maxCycle]int
	Q30   [maxCycle]int
	Depth [maxCycle]int
}

func (s *Stats) RetainedReads() int {
	return s.TotalReads - s.MinLenDropReads - s.S35DropReads -
		s.NsDropReads - s.PolyNDropReads - s.AdapterDropReads
}

func (s *Stats) RetainedBases() int {
	return s.TotalBases - s.MinLenDropBases - s.S35DropBases -
		s.NsDropBases - s.PolyNDropBases - s.AdapterDropBases
}

// countRetained folds one retained mate into the per-cycle tallies.
func (s *Stats) countRetained(seq, qual string, offset int) {
	for i := 0; i < len(seq) && i < maxCycle; i++ {
		switch seq[i] {
		case 'A':
			s.A[i]++
		case 'C':
			s.C[i]++
		case 'G':
			s.G[i]++
		case 'T':
			s.T[i]++
		}
	}
	for i := 0; i < len(qual) && i < maxCycle; i++ {
		s.Depth[i]++
		if int(qual[i])-offset >= 30 {
			s.Q30[i]++
		}
	}
}
