package fastq

import (
	"os"
	"path/filepath"
	"testing"
)

var (
	pairA = Pair{
		R1: Record{Name: "@a/1", Seq: "ACGT", Note: "+", Qual: "IIII"},
		R2: Record{Name: "@a/2", Seq: "TTGC", Note: "+", Qual: "JJJJ"},
	}
	pairB = Pair{
		R1: Record{Name: "@b/1", Seq: "GGCC", Note: "+", Qual: "IIII"},
		R2: Record{Name: "@b/2", Seq: "AATT", Note: "+", Qual: "JJJJ"},
	}
)

func TestPairWriterSplit(t *testing.T) {
	var outdir = t.TempDir()
	var pw = NewPairWriter(outdir, false, false)

	for _, pair := range []Pair{pairA, pairB} {
		if err := pw.WritePair(pair); err != nil {
			t.Fatalf("WritePair: %v", err)
		}
	}
	if err := pw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r1, err := os.ReadFile(filepath.Join(outdir, "pe.r1.fq"))
	if err != nil {
		t.Fatal(err)
	}
	var wantR1 = "@a/1\nACGT\n+\nIIII\n@b/1\nGGCC\n+\nIIII\n"
	if string(r1) != wantR1 {
		t.Errorf("pe.r1.fq = %q; want %q", r1, wantR1)
	}

	r2, err := os.ReadFile(filepath.Join(outdir, "pe.r2.fq"))
	if err != nil {
		t.Fatal(err)
	}
	var wantR2 = "@a/2\nTTGC\n+\nJJJJ\n@b/2\nAATT\n+\nJJJJ\n"
	if string(r2) != wantR2 {
		t.Errorf("pe.r2.fq = %q; want %q", r2, wantR2)
	}
}

func TestPairWriterMerged(t *testing.T) {
	var outdir = t.TempDir()
	var pw = NewPairWriter(outdir, true, false)

	if err := pw.WritePair(pairA); err != nil {
		t.Fatalf("WritePair: %v", err)
	}
	if err := pw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	merged, err := os.ReadFile(filepath.Join(outdir, "pe.merged.fq"))
	if err != nil {
		t.Fatal(err)
	}
	var want = "@a/1\nACGT\n+\nIIII\n@a/2\nTTGC\n+\nJJJJ\n"
	if string(merged) != want {
		t.Errorf("pe.merged.fq = %q; want %q", merged, want)
	}
}

// Gzip output must round-trip through Open.
func TestPairWriterZip(t *testing.T) {
	var outdir = t.TempDir()
	var pw = NewPairWriter(outdir, true, true)

	if err := pw.WritePair(pairA); err != nil {
		t.Fatalf("WritePair: %v", err)
	}
	if err := pw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err := Open(filepath.Join(outdir, "pe.merged.fq.gz"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	r1, ok := s.Next()
	if !ok {
		t.Fatal("expected first record, got none")
	}
	if r1 != pairA.R1 {
		t.Errorf("first record = %+v; want %+v", r1, pairA.R1)
	}
	r2, ok := s.Next()
	if !ok {
		t.Fatal("expected second record, got none")
	}
	if r2 != pairA.R2 {
		t.Errorf("second record = %+v; want %+v", r2, pairA.R2)
	}
}
