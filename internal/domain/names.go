package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{5,32}$`)

// CleanInput trims user text and folds it to NFC so that composed and
// decomposed spellings of the same letters compare equal.
func CleanInput(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// LooksLikeRealName accepts at least two whitespace-separated tokens, each
// of two or more characters made of letters, hyphens or apostrophes.
func LooksLikeRealName(input string) bool {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if utf8.RuneCountInString(p) < 2 {
			return false
		}
		for _, r := range p {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' {
				return false
			}
		}
	}
	return true
}

// NormalizeName capitalizes the first letter of every token and every
// letter following a hyphen, lower-casing the rest.
func NormalizeName(input string) string {
	tokens := strings.Fields(input)
	for i, token := range tokens {
		runes := []rune(token)
		for j, r := range runes {
			if !unicode.IsLetter(r) {
				continue
			}
			if j == 0 || runes[j-1] == '-' {
				runes[j] = unicode.ToUpper(r)
			} else {
				runes[j] = unicode.ToLower(r)
			}
		}
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}

// CanonicalHandle trims, drops one leading @ and lower-cases. It does not
// validate.
func CanonicalHandle(handle string) string {
	h := strings.TrimSpace(handle)
	h = strings.TrimPrefix(h, "@")
	return strings.ToLower(h)
}

// NormalizeHandle returns the canonical form of a handle, or
// ErrInvalidHandle when it is not 5-32 characters of [A-Za-z0-9_].
func NormalizeHandle(input string) (string, error) {
	h := CanonicalHandle(input)
	if !handlePattern.MatchString(h) {
		return "", ErrInvalidHandle
	}
	return h, nil
}
