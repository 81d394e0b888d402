package runinfo

import "testing"

func TestDetectAssay(t *testing.T) {
	cases := []struct {
		filename string
		name     string
		ok       bool
	}{
		{"BWS_QS6_METHYLATION_2221_111125_AN_ICR1.csv", "BWS", true},
		{"rss_qs6_methylation_562_112625_jd_peg1.csv", "RSS", true},
		{"RSS_QS6_METHYLATION_562.csv", "RSS", true},
		{"export.csv", "BWS", false},
	}
	for _, c := range cases {
		assay, ok := DetectAssay(c.filename)
		if assay.Name != c.name || ok != c.ok {
			t.Errorf("DetectAssay(%q) = %s, %v, want %s, %v",
				c.filename, assay.Name, ok, c.name, c.ok)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"BWS", "bws", "RSS", "rss"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) not ok", name)
		}
	}
	if _, ok := Lookup("PWS"); ok {
		t.Error("Lookup(PWS) ok, want miss")
	}
}

func TestAssayTargets(t *testing.T) {
	bws, _ := Lookup("BWS")
	if bws.Target1 != "ICR1" || bws.Target2 != "ICR2" || bws.Template != "qs6_bws_template.xlsm" {
		t.Errorf("BWS = %+v", bws)
	}
	rss, _ := Lookup("RSS")
	if rss.Target1 != "PEG1" || rss.Target2 != "GRB" || rss.Template != "qs6_rss_template.xlsm" {
		t.Errorf("RSS = %+v", rss)
	}
}

func TestControls(t *testing.T) {
	bws, _ := Lookup("BWS")
	rss, _ := Lookup("RSS")

	if !bws.ValidControl("c") || !bws.ValidControl("F") {
		t.Error("BWS must accept controls A-F")
	}
	if bws.ValidControl("G") {
		t.Error("BWS must reject control G")
	}
	if !rss.ValidControl("G") || !rss.ValidControl("h") {
		t.Error("RSS must accept controls up to H")
	}
	if rss.ValidControl("I") {
		t.Error("RSS must reject control I")
	}

	if got, want := bws.ControlName("c"), "Control C"; got != want {
		t.Errorf("ControlName = %q, want %q", got, want)
	}
}
