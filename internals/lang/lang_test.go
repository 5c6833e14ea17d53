package lang

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"en", EN},
		{"EN", EN},
		{"ja", JA},
		{" ja ", JA},
		{"pt-BR", Language("PT-BR")},
		{"pt-br", Language("PT-BR")},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a language", "??"} {
		if got, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %q, expected error", in, got)
		}
	}
}
