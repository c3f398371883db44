package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"SolexaFilter/pkg/fastq"
	"SolexaFilter/pkg/filter"
)

// flag
var (
	fq1 = flag.String(
		"1",
		"",
		"read 1 in FASTQ format (plain, gzip or bzip2)",
	)
	fq2 = flag.String(
		"2",
		"",
		"read 2 in FASTQ format (plain, gzip or bzip2)",
	)
	offset = flag.Int(
		"Q",
		0,
		"format of quality scores (33|64)",
	)
	minLen = flag.Int(
		"r",
		1,
		"minimum read length to be retained",
	)
	outdir = flag.String(
		"o",
		"",
		"output directory",
	)
	merge = flag.Bool(
		"m",
		false,
		"merge read 1 and read 2 after filtering",
	)
	noS35 = flag.Bool(
		"z",
		false,
		"turn off s35 filtering",
	)
	noNs = flag.Bool(
		"x",
		false,
		"turn off Ns filtering",
	)
	noPolyN = flag.Bool(
		"v",
		false,
		"turn off polyN filtering",
	)
	adapterList = flag.String(
		"a",
		"",
		"adapter list, one sequence per line, drop pairs matching any (or its reverse complement)",
	)
	zip = flag.Bool(
		"gz",
		false,
		"gzip output files",
	)
	plot = flag.Bool(
		"plot",
		false,
		"plot per-cycle ACGT distribution and Q30 of retained reads",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *fq1 == "" || *fq2 == "" || *outdir == "" || *offset == 0 {
		flag.PrintDefaults()
		log.Fatal("-1/-2/-o/-Q required!")
	}

	simpleUtil.CheckErr(os.MkdirAll(*outdir, 0755))
	var logFile = osUtil.Create(filepath.Join(*outdir, "log"))
	defer simpleUtil.DeferClose(logFile)
	var mw = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(mw)
	slog.SetDefault(slog.New(slog.NewTextHandler(mw, nil)))

	var cfg = filter.Config{
		Offset: *offset,
		MinLen: *minLen,
		S35:    !*noS35,
		Ns:     !*noNs,
		PolyN:  !*noPolyN,
	}
	if *adapterList != "" {
		cfg.Adapters = textUtil.File2Array(*adapterList)
	}
	var pipeline, err = filter.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var (
		in = fastq.NewPairScanner(
			simpleUtil.HandleError(fastq.Open(*fq1)),
			simpleUtil.HandleError(fastq.Open(*fq2)),
		)
		out = fastq.NewPairWriter(*outdir, *merge, *zip)
	)

	if err := pipeline.Run(in, out); err != nil {
		log.Fatal(err)
	}
	simpleUtil.CheckErr(in.Close())
	simpleUtil.CheckErr(out.Close())

	var stats = pipeline.Stats()
	stats.WriteStats(mw)
	stats.WriteXlsx(filepath.Join(*outdir, "summary.xlsx"))
	if *plot {
		stats.PlotLineACGT(filepath.Join(*outdir, "ACGT.html"))
		simpleUtil.CheckErr(stats.PlotQ30(filepath.Join(*outdir, "Q30.png")))
	}

	slog.Info("Done", "time", time.Since(t0))
}
