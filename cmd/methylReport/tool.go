package main

import (
	"log"
	"methylReport/pkg/qpcr"
	"methylReport/pkg/report"
	"methylReport/pkg/runinfo"
	"path/filepath"
	"strings"
)

// identifyTargets sorts the two exports into target order by filename,
// the way the instrument names them. Unidentifiable names keep the
// given order.
func identifyTargets(in1, in2 string, assay runinfo.Assay) (file1, file2 string) {
	name := strings.ToUpper(filepath.Base(in1))
	switch {
	case strings.Contains(name, assay.Target1):
		return in1, in2
	case strings.Contains(name, assay.Target2):
		return in2, in1
	}
	log.Printf("cannot tell %s from %s by filename, keeping input order", assay.Target1, assay.Target2)
	return in1, in2
}

// controlRecords expands a comma-separated control letter list into
// extracted records. An empty list skips the control rows.
func controlRecords(list string, assay runinfo.Assay, rows1, rows2 []qpcr.Row) []*qpcr.SampleRecord {
	if list == "" {
		return nil
	}
	var recs []*qpcr.SampleRecord
	for _, letter := range strings.Split(list, ",") {
		letter = strings.TrimSpace(letter)
		if !assay.ValidControl(letter) {
			log.Fatalf("invalid control %q for %s, available: %s",
				letter, assay.Name, strings.Join(assay.Controls, ", "))
		}
		name := assay.ControlName(letter)
		recs = append(recs, qpcr.ExtractSampleData(rows1, rows2, name, assay.Target1, assay.Target2))
	}
	if len(recs) != report.ControlsPerTarget {
		log.Fatalf("need %d controls, got %d in %q", report.ControlsPerTarget, len(recs), list)
	}
	return recs
}
