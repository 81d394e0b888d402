package qpcr

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// UndeterminedCq is the value recorded for wells the instrument reports
// as "Undetermined": no amplification within the run's cycle count.
var UndeterminedCq = 40.0

// ParseCq normalizes one raw Cq cell. Empty or whitespace-only cells
// carry no measurement, the instrument's "Undetermined" token (any case)
// maps to UndeterminedCq, everything else must parse as a decimal number
// or is likewise treated as no measurement.
func ParseCq(raw string) null.Float {
	s := strings.TrimSpace(raw)
	if s == "" {
		return null.Float{}
	}
	if strings.EqualFold(s, "Undetermined") {
		return null.FloatFrom(UndeterminedCq)
	}
	cq, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(cq)
}
