package i18n

import "testing"

func TestDetermineLocale(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		accept    string
		supported []string
		def       string
		want      string
	}{
		{"query wins", "hi", "en", []string{"en", "hi"}, "en", "hi"},
		{"query region variant", "hi-IN", "", []string{"en", "hi"}, "en", "hi"},
		{"query unsupported falls to header", "fr", "hi", []string{"en", "hi"}, "en", "hi"},
		{"accept language q values", "", "en;q=0.5,hi;q=0.9", []string{"en", "hi"}, "en", "hi"},
		{"accept language region", "", "hi-IN,en;q=0.8", []string{"en", "hi"}, "en", "hi"},
		{"nothing usable", "", "fr,de;q=0.9", []string{"en", "hi"}, "en", "en"},
		{"empty everything", "", "", []string{"en", "hi"}, "en", "en"},
		{"def unsupported picks first", "", "", []string{"hi"}, "fr", "hi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetermineLocale(c.query, c.accept, c.supported, c.def); got != c.want {
				t.Fatalf("DetermineLocale(%q,%q)=%q, want %q", c.query, c.accept, got, c.want)
			}
		})
	}
}
