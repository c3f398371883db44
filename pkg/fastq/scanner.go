package fastq

import (
	"bufio"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

const maxLineSize = 4 * 1024 * 1024

// Scanner reads one FASTQ stream as strict cycles of 4 lines. A trailing
// partial group is dropped, no partial record is emitted.
type Scanner struct {
	scanner *bufio.Scanner
	rc      io.Closer
}

// NewScanner wraps an already decoded text stream.
func NewScanner(r io.Reader) *Scanner {
	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	return &Scanner{scanner: scanner}
}

// Open opens path for record scanning. Plain, .gz and .bz2 inputs are
// handled by suffix, "-" reads standard input.
func Open(path string) (*Scanner, error) {
	var r, err = xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	var s = NewScanner(r)
	s.rc = r
	return s, nil
}

// Next returns the next record. ok is false at end of stream or on error.
func (s *Scanner) Next() (record Record, ok bool) {
	var lines [4]string
	for i := 0; i < 4; i++ {
		if !s.scanner.Scan() {
			return record, false
		}
		lines[i] = strings.TrimSpace(s.scanner.Text())
	}
	record = Record{
		Name: lines[0],
		Seq:  lines[1],
		Note: lines[2],
		Qual: lines[3],
	}
	return record, true
}

func (s *Scanner) Err() error {
	return s.scanner.Err()
}

func (s *Scanner) Close() error {
	if s.rc == nil {
		return nil
	}
	return s.rc.Close()
}

// PairScanner pulls one record from each of two scanners per step and stops
// as soon as either stream is exhausted. No error on mate count mismatch.
type PairScanner struct {
	s1 *Scanner
	s2 *Scanner
}

func NewPairScanner(s1, s2 *Scanner) *PairScanner {
	return &PairScanner{s1: s1, s2: s2}
}

func (ps *PairScanner) Next() (pair Pair, ok bool) {
	r1, ok1 := ps.s1.Next()
	r2, ok2 := ps.s2.Next()
	if !ok1 || !ok2 {
		return pair, false
	}
	return Pair{R1: r1, R2: r2}, true
}

func (ps *PairScanner) Err() error {
	if err := ps.s1.Err(); err != nil {
		return err
	}
	return ps.s2.Err()
}

func (ps *PairScanner) Close() error {
	err1 := ps.s1.Close()
	err2 := ps.s2.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
