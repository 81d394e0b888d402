package main

import (
	"flag"
	"log"
	"log/slog"
	"methylReport/pkg/qpcr"
	"methylReport/pkg/report"
	"methylReport/pkg/runinfo"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
	"github.com/samber/lo"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
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
	sampleName = flag.String(
		"sample",
		"",
		"sample to report, default every test sample",
	)
	templateDir = flag.String(
		"t",
		"",
		"template dir, default template/ beside the binary",
	)
	outputDir = flag.String(
		"o",
		"output",
		"output dir",
	)
	controls1 = flag.String(
		"c1",
		"",
		"3 control letters for target 1, e.g. C,D,F",
	)
	controls2 = flag.String(
		"c2",
		"",
		"3 control letters for target 2, e.g. A,B,E",
	)
	policyName = flag.String(
		"replicates",
		"truncate",
		"surplus replicate handling: truncate|pad|reject",
	)
	assayName = flag.String(
		"assay",
		"",
		"assay type BWS|RSS, default detected from -i1 filename",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *input1 == "" || *input2 == "" {
		flag.PrintDefaults()
		log.Fatal("-i1 and -i2 are required")
	}

	policy := simpleUtil.HandleError(report.ParseReplicatePolicy(*policyName))

	var (
		assay runinfo.Assay
		ok    bool
	)
	if *assayName != "" {
		assay, ok = runinfo.Lookup(*assayName)
		if !ok {
			log.Fatalf("unknown assay %q", *assayName)
		}
	} else {
		assay, ok = runinfo.DetectAssay(filepath.Base(*input1))
		if !ok {
			slog.Warn("assay not detected from filename, defaulting", "assay", assay.Name, "input", *input1)
		}
	}

	file1, file2 := identifyTargets(*input1, *input2, assay)

	rows1 := simpleUtil.HandleError(qpcr.ParseExportFile(file1))
	rows2 := simpleUtil.HandleError(qpcr.ParseExportFile(file2))
	log.Printf("parsed %d %s rows, %d %s rows", len(rows1), assay.Target1, len(rows2), assay.Target2)

	var (
		samples     = qpcr.GetAllSamples(rows1, rows2)
		testSamples = qpcr.TestSamples(samples)
		ri          = runinfo.Extract(filepath.Base(file1))
	)
	log.Printf("%d samples on plate, %d test samples", len(samples), len(testSamples))

	if *templateDir == "" {
		*templateDir = filepath.Join(exPath, "template")
	}
	template := filepath.Join(*templateDir, assay.Template)
	if !osUtil.FileExists(template) {
		log.Fatalf("template not found: %s", template)
	}

	selected := testSamples
	if *sampleName != "" {
		if !lo.Contains(samples, *sampleName) {
			log.Fatalf("sample %q not in either export, test samples: %s",
				*sampleName, strings.Join(testSamples, ", "))
		}
		selected = []string{*sampleName}
	}
	if len(selected) == 0 {
		log.Fatal("no test samples found")
	}

	ctrl1 := controlRecords(*controls1, assay, rows1, rows2)
	ctrl2 := controlRecords(*controls2, assay, rows1, rows2)
	if (len(ctrl1) == 0) != (len(ctrl2) == 0) {
		log.Fatal("-c1 and -c2 are required together")
	}

	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))

	hct116 := qpcr.ExtractSampleData(rows1, rows2, qpcr.UniversalControl, assay.Target1, assay.Target2)

	var failed int
	for i, name := range selected {
		log.Printf("[%d/%d] %s", i+1, len(selected), name)
		rep := &report.Report{
			Sample:    qpcr.ExtractSampleData(rows1, rows2, name, assay.Target1, assay.Target2),
			HCT116:    hct116,
			Controls1: ctrl1,
			Controls2: ctrl2,
			Run:       ri,
			Assay:     assay,
			Policy:    policy,
		}
		output := filepath.Join(*outputDir, report.OutputName(name, ri, filepath.Ext(template)))
		if err := report.Generate(template, output, rep); err != nil {
			slog.Error("generate failed", "sample", name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d of %d reports failed", failed, len(selected))
	}
	log.Printf("%d reports written to %s", len(selected), *outputDir)
}
