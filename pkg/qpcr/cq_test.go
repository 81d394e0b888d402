package qpcr

import (
	"testing"

	"gopkg.in/guregu/null.v3"
)

func TestParseCq(t *testing.T) {
	cases := []struct {
		in   string
		want null.Float
	}{
		{"", null.Float{}},
		{"   ", null.Float{}},
		{"\t", null.Float{}},
		{"Undetermined", null.FloatFrom(40)},
		{"undetermined", null.FloatFrom(40)},
		{"UNDETERMINED", null.FloatFrom(40)},
		{" Undetermined ", null.FloatFrom(40)},
		{"23.45", null.FloatFrom(23.45)},
		{" 23.45 ", null.FloatFrom(23.45)},
		{"40", null.FloatFrom(40)},
		{"-1.5", null.FloatFrom(-1.5)},
		{"1e2", null.FloatFrom(100)},
		{"abc", null.Float{}},
		{"23,45", null.Float{}},
		{"23.45.1", null.Float{}},
	}
	for _, c := range cases {
		if got := ParseCq(c.in); got != c.want {
			t.Errorf("ParseCq(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseCqNeverZero(t *testing.T) {
	// An absent measurement must stay absent, not become 0.
	for _, in := range []string{"", "  ", "n/a"} {
		got := ParseCq(in)
		if got.Valid {
			t.Errorf("ParseCq(%q).Valid = true, want absent", in)
		}
		if got.ValueOrZero() != 0 {
			t.Errorf("ParseCq(%q) carries %v", in, got.ValueOrZero())
		}
	}
	if got := ParseCq("0"); !got.Valid || got.Float64 != 0 {
		t.Errorf(`ParseCq("0") = %+v, want a present 0`, got)
	}
}
