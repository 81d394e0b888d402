// Package runinfo derives run metadata from QuantStudio export filenames
// and describes the supported methylation assays.
//
// Export names follow <ASSAY>_QS6_METHYLATION_<plate>_<MMDDYY>_<initials>_...
// Extraction never fails: pieces the name does not carry come back as
// visible placeholders so a report is still produced and the gaps stand
// out for manual correction.
package runinfo

import (
	"fmt"
	"regexp"
	"time"
)

// Placeholders for fields the filename does not carry.
const (
	UnknownPlate    = "XXXX"
	UnknownDate     = "MMDDYY"
	UnknownInitials = "XX"
	UnknownDateFull = "MM.DD.YYYY"
)

var (
	plateRe    = regexp.MustCompile(`METHYLATION_(\d{3,4})`)
	dateRe     = regexp.MustCompile(`METHYLATION_\d{3,4}_(\d{6})`)
	initialsRe = regexp.MustCompile(`METHYLATION_\d{3,4}_\d{6}_([A-Z]+)`)
)

// RunInfo identifies one qPCR run: the plate number, the run date as
// MMDDYY and the operator initials.
type RunInfo struct {
	Plate    string
	Date     string
	Initials string
}

// Extract pulls the run identifiers out of an export filename. Fields
// the name does not carry keep their Unknown placeholder.
func Extract(filename string) RunInfo {
	ri := RunInfo{
		Plate:    UnknownPlate,
		Date:     UnknownDate,
		Initials: UnknownInitials,
	}
	if m := plateRe.FindStringSubmatch(filename); m != nil {
		ri.Plate = m[1]
	}
	if m := dateRe.FindStringSubmatch(filename); m != nil {
		ri.Date = m[1]
	}
	if m := initialsRe.FindStringSubmatch(filename); m != nil {
		ri.Initials = m[1]
	}
	return ri
}

// DateFull renders the run date as MM.DD.YYYY, or UnknownDateFull when
// the date is missing or malformed.
func (ri RunInfo) DateFull() string {
	d, err := time.Parse("010206", ri.Date)
	if err != nil {
		return UnknownDateFull
	}
	return d.Format("01.02.2006")
}

// RunName builds the run identifier written into the report, e.g.
// BWS_QS6_METHYL_2221_111125_AN. The reports shorten METHYLATION to
// METHYL.
func (ri RunInfo) RunName(prefix string) string {
	return fmt.Sprintf("%s_QS6_METHYL_%s_%s_%s", prefix, ri.Plate, ri.Date, ri.Initials)
}
