package qpcr

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

// Column names consumed from the results table.
const (
	colSample = "Sample"
	colTarget = "Target"
	colCq     = "Cq"
)

// Probe suffixes of the Target column: <TAG>_M detects the methylated
// allele, <TAG>_UM the unmethylated one.
const (
	suffixM  = "_M"
	suffixUM = "_UM"
)

// UniversalControl is the cell-line control present on every plate.
const UniversalControl = "HCT116"

// SampleRecord carries every replicate Cq of one sample across the two
// target exports. The sequences keep source-file order and hold however
// many replicates the run contained.
type SampleRecord struct {
	Sample string

	Target1M  []null.Float
	Target1UM []null.Float
	Target2M  []null.Float
	Target2UM []null.Float
}

// ExtractSampleData collects the Cq replicates of sample from the two
// parsed exports. rows1 is scanned for tag1's probes, rows2 for tag2's;
// other samples and targets are ignored. Matching is exact and
// case-sensitive, as sample sheets and probe names come from the same
// plate setup. A sample absent from both exports yields four empty
// sequences.
func ExtractSampleData(rows1, rows2 []Row, sample, tag1, tag2 string) *SampleRecord {
	rec := &SampleRecord{Sample: sample}
	rec.Target1M, rec.Target1UM = collectTarget(rows1, sample, tag1)
	rec.Target2M, rec.Target2UM = collectTarget(rows2, sample, tag2)
	return rec
}

func collectTarget(rows []Row, sample, tag string) (m, um []null.Float) {
	for _, row := range rows {
		if row[colSample] != sample {
			continue
		}
		switch row[colTarget] {
		case tag + suffixM:
			m = append(m, ParseCq(row[colCq]))
		case tag + suffixUM:
			um = append(um, ParseCq(row[colCq]))
		}
	}
	return m, um
}

// GetAllSamples returns the distinct sample names of both exports in
// ascending order. The result does not depend on row order.
func GetAllSamples(rows1, rows2 []Row) []string {
	var samples []string
	for _, row := range rows1 {
		samples = append(samples, row[colSample])
	}
	for _, row := range rows2 {
		samples = append(samples, row[colSample])
	}
	samples = lo.Uniq(samples)
	sort.Strings(samples)
	return samples
}

// TestSamples filters a sample list down to the selectable test samples,
// dropping the plate's fixed controls.
func TestSamples(samples []string) []string {
	return lo.Filter(samples, func(s string, _ int) bool {
		return !strings.HasPrefix(s, "Control ") && s != UniversalControl && s != "NTC"
	})
}
