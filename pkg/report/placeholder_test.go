package report

import "testing"

func TestPlaceholderReplacer(t *testing.T) {
	r := newPlaceholderReplacer("BWR-6403C-2", "BWS_QS6_METHYL_2221_111125_AN", "11.11.2025", "AN")
	cases := []struct{ in, want string }{
		{"BWR-XXXX Results", "BWR-6403C-2 Results"},
		{"Plate BWS_QS6_METHYL_XXXX_MMDDYY_XX", "Plate BWS_QS6_METHYL_2221_111125_AN"},
		{"RSS_QS6_METHYL_XXX_MMDDYY_XX", "BWS_QS6_METHYL_2221_111125_AN"},
		{"RSS_QS6_METHYL_XXXX_MMDDYY_XX", "BWS_QS6_METHYL_2221_111125_AN"},
		{"Run: MM.DD.YYYY XX", "Run: 11.11.2025 AN"},
		{"MM.DD.YYYY", "MM.DD.YYYY"},
		{"no placeholders here", "no placeholders here"},
	}
	for _, c := range cases {
		if got := r.Replace(c.in); got != c.want {
			t.Errorf("Replace(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
