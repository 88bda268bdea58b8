// Package textmatch provides regular expressions anchored on Unicode word boundaries.
//
// Go's \b only knows ASCII word characters, so `\bsobre mí\b` never matches at the
// end of a line and `\bparticipé\b` never matches at all. WordPattern checks the
// boundary runes itself and treats any letter, digit or underscore as a word rune.
package textmatch

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// WordPattern matches a regular expression only where both ends of the match
// sit on a word boundary.
//
// When the leftmost match at a position fails the boundary check, the search
// resumes at the next position; shorter alternatives at the same position are
// not tried. `experiencia\s*(laboral)?` therefore does not match
// "experiencia laboralmente".
type WordPattern struct {
	re *regexp.Regexp
}

// MustCompile compiles expr, which must not contain its own outer \b anchors.
// Matching is case-sensitive; callers lower-case the input first.
func MustCompile(expr string) *WordPattern {
	return &WordPattern{re: regexp.MustCompile(expr)}
}

// String returns the source expression
func (p *WordPattern) String() string {
	return p.re.String()
}

// MatchString reports whether s contains a word-bounded match
func (p *WordPattern) MatchString(s string) bool {
	return p.find(s, 0) != nil
}

// FindAllStringSubmatch returns every non-overlapping word-bounded match with its groups
func (p *WordPattern) FindAllStringSubmatch(s string) [][]string {
	var out [][]string
	for pos := 0; pos <= len(s); {
		loc := p.find(s, pos)
		if loc == nil {
			break
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		out = append(out, groups)
		pos = nextPos(s, loc)
	}
	return out
}

// ReplaceAllString replaces every word-bounded match with repl (taken literally)
func (p *WordPattern) ReplaceAllString(s, repl string) string {
	var out []byte
	last := 0
	for pos := 0; pos <= len(s); {
		loc := p.find(s, pos)
		if loc == nil {
			break
		}
		out = append(out, s[last:loc[0]]...)
		out = append(out, repl...)
		last = loc[1]
		pos = nextPos(s, loc)
	}
	if last == 0 && out == nil {
		return s
	}
	return string(append(out, s[last:]...))
}

// find returns the submatch indexes of the first bounded match starting at or after pos
func (p *WordPattern) find(s string, pos int) []int {
	for pos <= len(s) {
		loc := p.re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			return nil
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if atBoundary(s, loc[0]) && atBoundary(s, loc[1]) {
			return loc
		}
		if loc[0] >= len(s) {
			return nil
		}
		_, size := utf8.DecodeRuneInString(s[loc[0]:])
		pos = loc[0] + size
	}
	return nil
}

func nextPos(s string, loc []int) int {
	if loc[1] > loc[0] {
		return loc[1]
	}
	if loc[1] >= len(s) {
		return len(s) + 1
	}
	_, size := utf8.DecodeRuneInString(s[loc[1]:])
	return loc[1] + size
}

// atBoundary reports whether a word boundary sits at byte offset i of s
func atBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = IsWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = IsWordRune(r)
	}
	return before != after
}

// IsWordRune reports whether r counts as part of a word
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
