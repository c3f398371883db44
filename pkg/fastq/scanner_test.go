package fastq

import (
	"strings"
	"testing"
)

func TestScannerNext(t *testing.T) {
	// Test case 1: two complete records, lines whitespace-trimmed
	{
		var in = "@r1 \nACGT\n+\nIIII\n@r2\nTTTT\n+\nJJJJ\n"
		var s = NewScanner(strings.NewReader(in))

		r1, ok := s.Next()
		if !ok {
			t.Fatal("expected first record, got none")
		}
		if r1.Name != "@r1" || r1.Seq != "ACGT" || r1.Note != "+" || r1.Qual != "IIII" {
			t.Errorf("unexpected first record: %+v", r1)
		}

		r2, ok := s.Next()
		if !ok {
			t.Fatal("expected second record, got none")
		}
		if r2.Name != "@r2" || r2.Seq != "TTTT" {
			t.Errorf("unexpected second record: %+v", r2)
		}

		if _, ok := s.Next(); ok {
			t.Error("expected end of stream")
		}
		if err := s.Err(); err != nil {
			t.Errorf("expected no error, but got: %v", err)
		}
	}

	// Test case 2: trailing partial group is dropped silently
	{
		var in = "@r1\nACGT\n+\nIIII\n@r2\nTTTT\n+\n"
		var s = NewScanner(strings.NewReader(in))

		if _, ok := s.Next(); !ok {
			t.Fatal("expected first record, got none")
		}
		if _, ok := s.Next(); ok {
			t.Error("partial record should not be emitted")
		}
	}

	// Test case 3: empty input
	{
		var s = NewScanner(strings.NewReader(""))
		if _, ok := s.Next(); ok {
			t.Error("expected no record from empty input")
		}
	}
}

func TestPairScanner(t *testing.T) {
	var fq = func(names ...string) string {
		var sb strings.Builder
		for _, name := range names {
			sb.WriteString(name + "\nACGT\n+\nIIII\n")
		}
		return sb.String()
	}

	// Test case 1: equal length streams
	{
		var ps = NewPairScanner(
			NewScanner(strings.NewReader(fq("@a/1", "@b/1"))),
			NewScanner(strings.NewReader(fq("@a/2", "@b/2"))),
		)
		var n = 0
		for {
			pair, ok := ps.Next()
			if !ok {
				break
			}
			n++
			if !strings.HasSuffix(pair.R1.Name, "/1") || !strings.HasSuffix(pair.R2.Name, "/2") {
				t.Errorf("mates swapped: %+v", pair)
			}
		}
		if n != 2 {
			t.Errorf("expected 2 pairs, got %d", n)
		}
	}

	// Test case 2: shortest stream wins, no error on mismatch
	{
		var ps = NewPairScanner(
			NewScanner(strings.NewReader(fq("@a/1", "@b/1", "@c/1"))),
			NewScanner(strings.NewReader(fq("@a/2"))),
		)
		var n = 0
		for {
			if _, ok := ps.Next(); !ok {
				break
			}
			n++
		}
		if n != 1 {
			t.Errorf("expected 1 pair, got %d", n)
		}
		if err := ps.Err(); err != nil {
			t.Errorf("expected no error, but got: %v", err)
		}
	}
}
