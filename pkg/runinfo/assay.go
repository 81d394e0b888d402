package runinfo

import (
	"strings"

	"github.com/samber/lo"
)

// Assay describes one supported methylation assay: its two target
// regions, the report template and the control letters selectable on its
// plate.
type Assay struct {
	Name     string
	Template string
	Target1  string
	Target2  string
	Controls []string
}

var assays = map[string]Assay{
	"BWS": {
		Name:     "BWS",
		Template: "qs6_bws_template.xlsm",
		Target1:  "ICR1",
		Target2:  "ICR2",
		Controls: []string{"A", "B", "C", "D", "E", "F"},
	},
	"RSS": {
		Name:     "RSS",
		Template: "qs6_rss_template.xlsm",
		Target1:  "PEG1",
		Target2:  "GRB",
		Controls: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
	},
}

// DetectAssay picks the assay from an export filename prefix. Unknown
// prefixes fall back to BWS with ok false so the caller can warn.
func DetectAssay(filename string) (assay Assay, ok bool) {
	upper := strings.ToUpper(filename)
	for name, a := range assays {
		if strings.HasPrefix(upper, name) {
			return a, true
		}
	}
	return assays["BWS"], false
}

// Lookup returns the assay with the given name, case-insensitive.
func Lookup(name string) (Assay, bool) {
	a, ok := assays[strings.ToUpper(name)]
	return a, ok
}

// ValidControl reports whether letter names one of the assay's controls.
func (a Assay) ValidControl(letter string) bool {
	return lo.Contains(a.Controls, strings.ToUpper(letter))
}

// ControlName expands a control letter to its sample name on the plate,
// e.g. "C" -> "Control C".
func (a Assay) ControlName(letter string) string {
	return "Control " + strings.ToUpper(letter)
}
