package ui

import "testing"

func TestThemeOrder_MatchesThemes(t *testing.T) {
	if len(themeOrder) != len(themes) {
		t.Fatalf("themeOrder has %d names, themes has %d", len(themeOrder), len(themes))
	}
	for _, name := range themeOrder {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q) returned %q", name, GetTheme(name).Name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Newsprint"); got != "Nightfox" {
		t.Fatalf("NextTheme(Newsprint) = %q, want Nightfox", got)
	}
	if got := NextTheme("unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("nope").Name; got != DefaultTheme {
		t.Fatalf("GetTheme(nope) = %q, want %q", got, DefaultTheme)
	}
}
