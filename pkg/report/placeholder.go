package report

import "strings"

// newPlaceholderReplacer builds the Final-sheet substitution. The BWS and
// RSS templates carry a sample placeholder, a run-name placeholder in
// three historical spellings, and a date+initials placeholder; each maps
// onto the current run.
func newPlaceholderReplacer(sample, runName, dateFull, initials string) *strings.Replacer {
	return strings.NewReplacer(
		"BWR-XXXX", sample,
		"BWS_QS6_METHYL_XXXX_MMDDYY_XX", runName,
		"RSS_QS6_METHYL_XXX_MMDDYY_XX", runName,
		"RSS_QS6_METHYL_XXXX_MMDDYY_XX", runName,
		"MM.DD.YYYY XX", dateFull+" "+initials,
	)
}
