// Package script holds the script-side leaf components: the element reader,
// the character name normalizer, and the dialogue preview extractor. The
// screenplay parser itself is external; this package only consumes its
// output as a finite element sequence.
package script

import (
	"regexp"
	"strings"
	"unicode"
)

// IdentityMaxLen is the console label length limit. Character identities are
// truncated to this many runes, so two long names sharing a 12-rune prefix
// collapse to one identity. Lossy, but it matches what the console displays.
const IdentityMaxLen = 12

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	hasLowercase  = regexp.MustCompile(`[a-z]`)
)

// SplitCharacters cleans a raw character heading and splits it into
// individual names in speaking order. Parenthetical stage directions are
// dropped and multi-name headings split on " & ". Each name is title-cased
// unless it already carries lowercase letters, which signals deliberate
// casing (e.g. "Dr. Seuss"). An empty heading yields no names.
func SplitCharacters(heading string) []string {
	heading = parenthetical.ReplaceAllString(heading, "")
	if strings.TrimSpace(heading) == "" {
		return nil
	}
	parts := strings.Split(heading, " & ")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if hasLowercase.MatchString(part) {
			names = append(names, part)
		} else {
			names = append(names, titleCase(part))
		}
	}
	return names
}

// Identity reduces a normalized name to the key used for liveness tracking
// and slot assignment: trimmed and truncated to IdentityMaxLen runes.
func Identity(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > IdentityMaxLen {
		return string(runes[:IdentityMaxLen])
	}
	return name
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			r = unicode.ToUpper(r)
		case isLetter:
			r = unicode.ToLower(r)
		}
		prevLetter = isLetter
		b.WriteRune(r)
	}
	return b.String()
}
