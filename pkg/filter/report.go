package filter

import (
	"io"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/math"
)

// WriteStats writes the run summary: per-filter dropped reads and bases,
// totals, and retained counts with percentages to 2 decimal places. A run
// with zero total reads is a legitimate degenerate case, the percentages are
// reported as NA instead of dividing by zero.
func (s *Stats) WriteStats(w io.Writer) {
	fmtUtil.Fprintf(w, "Min len dropped reads: %d\n", s.MinLenDropReads)
	fmtUtil.Fprintf(w, "Min len dropped bases: %d\n", s.MinLenDropBases)
	fmtUtil.Fprintf(w, "s35 dropped reads: %d\n", s.S35DropReads)
	fmtUtil.Fprintf(w, "s35 dropped bases: %d\n", s.S35DropBases)
	fmtUtil.Fprintf(w, "Ns dropped reads: %d\n", s.NsDropReads)
	fmtUtil.Fprintf(w, "Ns dropped bases: %d\n", s.NsDropBases)
	fmtUtil.Fprintf(w, "polyN dropped reads: %d\n", s.PolyNDropReads)
	fmtUtil.Fprintf(w, "polyN dropped bases: %d\n", s.PolyNDropBases)
	fmtUtil.Fprintf(w, "Adapter dropped reads: %d\n", s.AdapterDropReads)
	fmtUtil.Fprintf(w, "Adapter dropped bases: %d\n", s.AdapterDropBases)
	fmtUtil.Fprintf(w, "Total reads: %d\n", s.TotalReads)
	fmtUtil.Fprintf(w, "Total bases: %d\n", s.TotalBases)

	if s.TotalReads == 0 {
		slog.Warn("no reads processed, retained percentages not available")
		fmtUtil.Fprintf(w, "Retained reads: 0 (NA %%)\n")
		fmtUtil.Fprintf(w, "Retained bases: 0 (NA %%)\n")
		return
	}

	fmtUtil.Fprintf(
		w,
		"Retained reads: %d (%.2f %%)\n",
		s.RetainedReads(),
		math.DivisionInt(s.RetainedReads(), s.TotalReads)*100,
	)
	if s.TotalBases == 0 {
		fmtUtil.Fprintf(w, "Retained bases: 0 (NA %%)\n")
		return
	}
	fmtUtil.Fprintf(
		w,
		"Retained bases: %d (%.2f %%)\n",
		s.RetainedBases(),
		math.DivisionInt(s.RetainedBases(), s.TotalBases)*100,
	)
}
