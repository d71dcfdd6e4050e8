package comic

import "strconv"

// CoverTitle labels page 0.
const CoverTitle = "Cover Page"

// PageLabel returns the display label for page n.
func PageLabel(n int) string {
	if n == 0 {
		return CoverTitle
	}
	return "Page " + strconv.Itoa(n)
}

// SectionLabel returns the display label for the section at index i ("Part I", "Part II", ...).
func SectionLabel(i int) string {
	return "Part " + romanNumeral(i+1)
}

var romanTable = []struct {
	symbol string
	value  int
}{
	{"M", 1000}, {"CM", 900},
	{"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90},
	{"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9},
	{"V", 5}, {"IV", 4},
	{"I", 1},
}

func romanNumeral(num int) string {
	if num <= 0 {
		return strconv.Itoa(num)
	}
	out := make([]byte, 0, 8)
	for _, entry := range romanTable {
		for num >= entry.value {
			out = append(out, entry.symbol...)
			num -= entry.value
		}
	}
	return string(out)
}
