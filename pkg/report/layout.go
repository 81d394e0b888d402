// Package report populates the methylation assay's Excel report template
// with the Cq measurements of one test sample.
//
// The template is an xlsm whose macros compute the methylation calls; the
// package only fills the input cells the macros read and never touches
// the VBA project, which excelize carries through the save unchanged.
package report

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Sheet names of the report template.
const (
	SheetStepOne = "StepOne Data"
	SheetFinal   = "Final"
	SheetRawData = "RAW DATA"
	SheetSummary = "Sheet1"
)

// StepOne Data geometry, 1-based. Each target owns a block of rows: the
// test sample first, then HCT116, then three user-picked controls with
// three replicate rows each. Sample names go to columns A and H, the
// methylated Cq to C and the unmethylated Cq to J; columns B and I keep
// the template's probe labels.
const (
	colSample   = 1  // A
	colCqM      = 3  // C
	colSampleUM = 8  // H
	colCqUM     = 10 // J

	sampleRowTarget1 = 6
	hctRowTarget1    = 9
	ctrlRowTarget1   = 12

	sampleRowTarget2 = 24
	hctRowTarget2    = 27
	ctrlRowTarget2   = 30

	// Replicates is the template's replicate row count per sample and
	// ControlsPerTarget the number of control slots per block.
	Replicates        = 3
	ControlsPerTarget = 3
)

// ReplicatePolicy decides what happens when a sample carries more
// replicate measurements than the template block seats.
type ReplicatePolicy int

const (
	// Truncate silently drops surplus replicates.
	Truncate ReplicatePolicy = iota
	// Pad also extends short sequences with absent values to the block
	// size.
	Pad
	// Reject fails the report on surplus replicates.
	Reject
)

func (p ReplicatePolicy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Pad:
		return "pad"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("ReplicatePolicy(%d)", int(p))
}

// ParseReplicatePolicy maps a flag value onto a policy.
func ParseReplicatePolicy(s string) (ReplicatePolicy, error) {
	switch s {
	case "truncate", "":
		return Truncate, nil
	case "pad":
		return Pad, nil
	case "reject":
		return Reject, nil
	}
	return Truncate, fmt.Errorf("unknown replicate policy %q", s)
}

// FitReplicates shapes a replicate sequence to the n slots of a template
// block under the given policy. Fewer measurements than slots is a
// normal assay outcome, never an error; the missing cells stay as the
// template has them.
func FitReplicates(cqs []null.Float, n int, policy ReplicatePolicy) ([]null.Float, error) {
	if len(cqs) > n {
		if policy == Reject {
			return nil, fmt.Errorf("%d replicates exceed the %d template rows", len(cqs), n)
		}
		return cqs[:n], nil
	}
	if policy == Pad && len(cqs) < n {
		padded := make([]null.Float, n)
		copy(padded, cqs)
		return padded, nil
	}
	return cqs, nil
}
