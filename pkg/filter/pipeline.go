package filter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/liserjrqlxue/DNA/pkg/util"

	"SolexaFilter/pkg/fastq"
)

// PairWriter receives the surviving pairs.
type PairWriter interface {
	WritePair(pair fastq.Pair) error
}

// Pipeline applies the filters to each pair in fixed order, short-circuiting
// on the first failure, and accumulates drop statistics.
type Pipeline struct {
	cfg     Config
	stats   Stats
	matcher *ahocorasick.Matcher
}

// New validates cfg and builds the pipeline. Any quality offset other than
// 33 or 64 is a configuration error.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Offset != 33 && cfg.Offset != 64 {
		return nil, fmt.Errorf("invalid quality offset %d, expect 33 or 64", cfg.Offset)
	}
	if cfg.PolyNLimit == 0 {
		cfg.PolyNLimit = PolyNLimit
	}

	var p = &Pipeline{cfg: cfg}
	if len(cfg.Adapters) > 0 {
		var patterns []string
		for _, adapter := range cfg.Adapters {
			adapter = strings.ToUpper(strings.TrimSpace(adapter))
			if adapter == "" {
				continue
			}
			patterns = append(patterns, adapter, util.ReverseComplement(adapter))
		}
		if len(patterns) > 0 {
			p.matcher = ahocorasick.NewStringMatcher(patterns)
		}
	}
	return p, nil
}

func (p *Pipeline) Stats() *Stats {
	return &p.stats
}

func (p *Pipeline) hasAdapter(seq string) bool {
	return len(p.matcher.Match([]byte(seq))) > 0
}

// Run pulls pairs from in until either input is exhausted, writes the
// surviving pairs to out and returns on the first scan or write error.
// One pair is in flight at a time.
func (p *Pipeline) Run(in *fastq.PairScanner, out PairWriter) error {
	var (
		cfg     = p.cfg
		s       = &p.stats
		nReport = 2000
	)

	for {
		pair, ok := in.Next()
		if !ok {
			break
		}
		var bases = len(pair.R1.Seq) + len(pair.R2.Seq)
		s.TotalReads += 2
		s.TotalBases += bases

		if s.TotalReads%nReport == 0 {
			slog.Info("Processed", "reads", s.TotalReads)
			nReport *= 2
		}

		if IsShort(pair.R1.Seq, cfg.MinLen) || IsShort(pair.R2.Seq, cfg.MinLen) {
			s.MinLenDropReads += 2
			s.MinLenDropBases += bases
			continue
		}

		if cfg.S35 && (IsS35Bad(pair.R1.Qual, cfg.Offset) || IsS35Bad(pair.R2.Qual, cfg.Offset)) {
			s.S35DropReads += 2
			s.S35DropBases += bases
			continue
		}

		if cfg.Ns && (HasN(pair.R1.Seq) || HasN(pair.R2.Seq)) {
			s.NsDropReads += 2
			s.NsDropBases += bases
			continue
		}

		if cfg.PolyN && (IsPolyN(pair.R1.Seq, cfg.PolyNLimit) || IsPolyN(pair.R2.Seq, cfg.PolyNLimit)) {
			s.PolyNDropReads += 2
			s.PolyNDropBases += bases
			continue
		}

		if p.matcher != nil && (p.hasAdapter(pair.R1.Seq) || p.hasAdapter(pair.R2.Seq)) {
			s.AdapterDropReads += 2
			s.AdapterDropBases += bases
			continue
		}

		s.countRetained(pair.R1.Seq, pair.R1.Qual, cfg.Offset)
		s.countRetained(pair.R2.Seq, pair.R2.Qual, cfg.Offset)
		if err := out.WritePair(pair); err != nil {
			return err
		}
	}

	return in.Err()
}
