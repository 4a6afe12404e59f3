// Package filename turns client supplied upload names into names that are
// safe to store on a filesystem.
package filename

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Secure normalizes the name to ASCII, drops path separators and any
// character outside [A-Za-z0-9_.-], and joins whitespace runs with "_".
// The result may be empty.
func Secure(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		b.WriteRune(r)
	}

	joined := strings.Join(strings.Fields(b.String()), "_")
	return strings.Trim(unsafeChars.ReplaceAllString(joined, ""), "._")
}

// Ext returns the lower-cased extension without the dot, or "" when the
// name has none.
func Ext(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
