package thumb

import (
	"strings"
	"unicode/utf8"
)

// maxTitleLines bounds the wrapped title. Lines past the limit are dropped
// silently; an overlong title is cut, not ellipsized.
const maxTitleLines = 2

// WrapLines greedily wraps text into lines of at most maxChars characters
// (counted in runes, including single-space separators) and returns at most
// maxTitleLines of them. Words accumulate onto the current line while they
// fit; the first word that would overflow closes the line and starts the
// next one. Empty input yields no lines.
func WrapLines(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var buf []string
	bufLen := 0 // rune count of words in buf, excluding separators

	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if bufLen+len(buf)-1+wl > maxChars {
			lines = append(lines, strings.Join(buf, " "))
			buf = []string{w}
			bufLen = wl
		} else {
			buf = append(buf, w)
			bufLen += wl
		}
	}
	lines = append(lines, strings.Join(buf, " "))

	if len(lines) > maxTitleLines {
		lines = lines[:maxTitleLines]
	}
	return lines
}

// Wrap is WrapLines with the lines joined by newlines into one string.
func Wrap(text string, maxChars int) string {
	return strings.Join(WrapLines(text, maxChars), "\n")
}
