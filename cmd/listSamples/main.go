package main

import (
	"flag"
	"log"
	"methylReport/pkg/qpcr"
	"os"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
	"github.com/samber/lo"
)

// flag
var (
	input1 = flag.String(
		"i1",
		"",
		"first results export csv",
	)
	input2 = flag.String(
		"i2",
		"",
		"second results export csv",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *input1 == "" || *input2 == "" {
		flag.PrintDefaults()
		log.Fatal("-i1 and -i2 are required")
	}

	rows1 := simpleUtil.HandleError(qpcr.ParseExportFile(*input1))
	rows2 := simpleUtil.HandleError(qpcr.ParseExportFile(*input2))

	samples := qpcr.GetAllSamples(rows1, rows2)
	tests := qpcr.TestSamples(samples)
	for _, s := range samples {
		mark := " "
		if lo.Contains(tests, s) {
			mark = "*"
		}
		fmtUtil.Fprintf(os.Stdout, "%s %s\n", mark, s)
	}
	log.Printf("%d samples, %d test samples (*)", len(samples), len(tests))
}
