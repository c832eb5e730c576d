package period

import "strings"

// Normalize rewrites a free-form expression into the canonical form the
// parser works on: lower-cased, no whitespace around braces, dashes or
// commas, and an explicit "|" between consecutive scale tests, so that
// "wd {Mon-Fri} hr {9-17}" becomes "wd{mon-fri}|hr{9-17}".
//
// The passes run in a fixed order because later ones depend on the shape
// produced by earlier ones. Normalizing an already-normalized expression
// is a no-op.
func Normalize(expr string) string {
	s := strings.TrimSpace(expr)
	s = stripSpaceBefore(s, '{')
	s = stripSpaceAfter(s, ',')
	s = stripSpaceAround(s, '-')
	s = stripSpaceAfter(s, '{')
	s = stripSpaceAround(s, '}')
	s = insertOrMarkers(s)
	return strings.ToLower(s)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// stripSpaceBefore removes every whitespace run immediately preceding c.
func stripSpaceBefore(s string, c byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			b.WriteByte(s[i])
			continue
		}
		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != c {
			b.WriteString(s[i:j])
		}
		i = j - 1
	}
	return b.String()
}

// stripSpaceAfter removes every whitespace run immediately following c.
func stripSpaceAfter(s string, c byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == c {
			for i+1 < len(s) && isSpace(s[i+1]) {
				i++
			}
		}
	}
	return b.String()
}

func stripSpaceAround(s string, c byte) string {
	return stripSpaceAfter(stripSpaceBefore(s, c), c)
}

// insertOrMarkers chains consecutive scale tests: a closing brace not
// followed by a comma, another marker or the end of the string gets a "|"
// appended. Skipping an existing marker keeps Normalize idempotent.
func insertOrMarkers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '}' && i+1 < len(s) && s[i+1] != ',' && s[i+1] != '|' {
			b.WriteByte('|')
		}
	}
	return b.String()
}
