package fastq

import (
	"io"
	"path/filepath"

	gzip "github.com/klauspost/pgzip"

	"github.com/liserjrqlxue/goUtil/osUtil"
)

// PairWriter writes retained pairs either to two files, one per mate, or to
// a single merged file with each pair's read 1 immediately followed by its
// read 2. With zip the files gain .gz and are written through pgzip. Every
// pair is flushed after writing so an interrupt never leaves a partial
// record mid-write.
type PairWriter struct {
	Out1 io.WriteCloser
	Out2 io.WriteCloser
	OutM io.WriteCloser
	Gw1  *gzip.Writer
	Gw2  *gzip.Writer
	GwM  *gzip.Writer // merged

	merge bool
}

// NewPairWriter creates the output files under outdir: pe.r1.fq/pe.r2.fq,
// or pe.merged.fq with merge.
func NewPairWriter(outdir string, merge, zip bool) (pw *PairWriter) {
	var suffix = ""
	if zip {
		suffix = ".gz"
	}

	pw = &PairWriter{merge: merge}
	if merge {
		pw.OutM = osUtil.Create(filepath.Join(outdir, "pe.merged.fq"+suffix))
		if zip {
			pw.GwM = gzip.NewWriter(pw.OutM)
		}
	} else {
		pw.Out1 = osUtil.Create(filepath.Join(outdir, "pe.r1.fq"+suffix))
		pw.Out2 = osUtil.Create(filepath.Join(outdir, "pe.r2.fq"+suffix))
		if zip {
			pw.Gw1 = gzip.NewWriter(pw.Out1)
			pw.Gw2 = gzip.NewWriter(pw.Out2)
		}
	}

	return
}

func (pw *PairWriter) WritePair(pair Pair) error {
	if pw.merge {
		if _, err := pw.mergedWriter().Write(pair.R1.Bytes()); err != nil {
			return err
		}
		if _, err := pw.mergedWriter().Write(pair.R2.Bytes()); err != nil {
			return err
		}
		return flush(pw.GwM)
	}

	if _, err := pw.mateWriter(1).Write(pair.R1.Bytes()); err != nil {
		return err
	}
	if _, err := pw.mateWriter(2).Write(pair.R2.Bytes()); err != nil {
		return err
	}
	if err := flush(pw.Gw1); err != nil {
		return err
	}
	return flush(pw.Gw2)
}

func (pw *PairWriter) mergedWriter() io.Writer {
	if pw.GwM != nil {
		return pw.GwM
	}
	return pw.OutM
}

func (pw *PairWriter) mateWriter(mate int) io.Writer {
	if mate == 1 {
		if pw.Gw1 != nil {
			return pw.Gw1
		}
		return pw.Out1
	}
	if pw.Gw2 != nil {
		return pw.Gw2
	}
	return pw.Out2
}

func flush(gw *gzip.Writer) error {
	if gw == nil {
		return nil
	}
	return gw.Flush()
}

func (pw *PairWriter) Close() error {
	var errs []error
	for _, gw := range []*gzip.Writer{pw.Gw1, pw.Gw2, pw.GwM} {
		if gw != nil {
			errs = append(errs, gw.Close())
		}
	}
	for _, out := range []io.WriteCloser{pw.Out1, pw.Out2, pw.OutM} {
		if out != nil {
			errs = append(errs, out.Close())
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
