package runinfo

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		filename              string
		plate, date, initials string
	}{
		{
			"BWS_QS6_METHYLATION_2221_111125_AN_20251111_115944_ICR1_Results_20251111 150600.csv",
			"2221", "111125", "AN",
		},
		{
			"RSS_QS6_METHYLATION_562_112625_JD_PEG1_Results.csv",
			"562", "112625", "JD",
		},
		{
			"BWS_QS6_METHYLATION_2221_ICR2.csv",
			"2221", "MMDDYY", "XX",
		},
		{
			"random_export.csv",
			"XXXX", "MMDDYY", "XX",
		},
	}
	for _, c := range cases {
		ri := Extract(c.filename)
		if ri.Plate != c.plate || ri.Date != c.date || ri.Initials != c.initials {
			t.Errorf("Extract(%q) = %+v, want %s/%s/%s",
				c.filename, ri, c.plate, c.date, c.initials)
		}
	}
}

func TestDateFull(t *testing.T) {
	cases := []struct {
		date, want string
	}{
		{"111125", "11.11.2025"},
		{"010299", "01.02.1999"},
		{"MMDDYY", "MM.DD.YYYY"},
		{"133199", "MM.DD.YYYY"},
		{"", "MM.DD.YYYY"},
	}
	for _, c := range cases {
		ri := RunInfo{Date: c.date}
		if got := ri.DateFull(); got != c.want {
			t.Errorf("DateFull(%q) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestRunName(t *testing.T) {
	ri := RunInfo{Plate: "2221", Date: "111125", Initials: "AN"}
	if got, want := ri.RunName("BWS"), "BWS_QS6_METHYL_2221_111125_AN"; got != want {
		t.Errorf("RunName = %q, want %q", got, want)
	}
	blank := Extract("no_pattern_here.csv")
	if got, want := blank.RunName("RSS"), "RSS_QS6_METHYL_XXXX_MMDDYY_XX"; got != want {
		t.Errorf("RunName = %q, want %q", got, want)
	}
}
