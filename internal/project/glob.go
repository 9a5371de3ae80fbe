package project

import (
	"regexp"
	"strings"
)

// globToRegexp translates the minimal glob dialect of spec §6: "**"
// becomes ".*", a single-segment "*" becomes "[^/]*", and every other
// character is escaped as a regex literal. The result is anchored so it is
// matched against the whole `file` string; there are no character classes
// and no brace expansion.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '*' {
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
				continue
			}
			b.WriteString("[^/]*")
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(runes[i])))
	}
	b.WriteByte('$')

	return regexp.Compile(b.String())
}
