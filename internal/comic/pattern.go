package comic

import (
	"fmt"
	"strings"
)

// Default image name patterns. The run of '#' is replaced by the page number
// zero padded to the length of the run.
const (
	DefaultPagePattern  = "page-##"
	DefaultThumbPattern = "thumb-##"
)

// Pattern builds image base names such as "page-05" from a template like "page-##".
type Pattern struct {
	prefix string
	suffix string
	width  int
}

// ParsePattern compiles a template. The first run of '#' marks the number.
func ParsePattern(template string) (Pattern, error) {
	start := strings.IndexByte(template, '#')
	if start < 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no '#' placeholder", template)
	}
	end := start
	for end < len(template) && template[end] == '#' {
		end++
	}
	return Pattern{
		prefix: template[:start],
		suffix: template[end:],
		width:  end - start,
	}, nil
}

// MustPattern is ParsePattern for compile-time constants.
func MustPattern(template string) Pattern {
	p, err := ParsePattern(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Width is the zero padding width.
func (p Pattern) Width() int {
	return p.width
}

// Format renders the base name for page n.
func (p Pattern) Format(n int) string {
	return fmt.Sprintf("%s%0*d%s", p.prefix, p.width, n, p.suffix)
}

// String returns the template the pattern was parsed from.
func (p Pattern) String() string {
	return p.prefix + strings.Repeat("#", p.width) + p.suffix
}
