package comic

import "testing"

func TestParsePattern(t *testing.T) {
	cases := []struct {
		template string
		n        int
		want     string
		width    int
	}{
		{"page-##", 5, "page-05", 2},
		{"page-##", 123, "page-123", 2},
		{"thumb-####", 7, "thumb-0007", 4},
		{"p#_x", 3, "p3_x", 1},
		{"##-##", 4, "04-##", 2},
	}
	for _, tc := range cases {
		p, err := ParsePattern(tc.template)
		if err != nil {
			t.Fatalf("ParsePattern(%q) returned error: %v", tc.template, err)
		}
		if got := p.Format(tc.n); got != tc.want {
			t.Fatalf("%q.Format(%d) = %q, want %q", tc.template, tc.n, got, tc.want)
		}
		if p.Width() != tc.width {
			t.Fatalf("%q.Width() = %d, want %d", tc.template, p.Width(), tc.width)
		}
	}
}

func TestParsePattern_RequiresPlaceholder(t *testing.T) {
	if _, err := ParsePattern("page"); err == nil {
		t.Fatal("ParsePattern without '#' returned nil error")
	}
}

func TestPatternString(t *testing.T) {
	if got := MustPattern("thumb-###").String(); got != "thumb-###" {
		t.Fatalf("String() = %q, want thumb-###", got)
	}
}

func TestLabels(t *testing.T) {
	if got := PageLabel(0); got != CoverTitle {
		t.Fatalf("PageLabel(0) = %q, want %q", got, CoverTitle)
	}
	if got := PageLabel(12); got != "Page 12" {
		t.Fatalf("PageLabel(12) = %q", got)
	}
	cases := map[int]string{0: "Part I", 3: "Part IV", 8: "Part IX", 13: "Part XIV", 1993: "Part MCMXCIV"}
	for i, want := range cases {
		if got := SectionLabel(i); got != want {
			t.Fatalf("SectionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}
