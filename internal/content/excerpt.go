package content

import (
	"math"
	"strings"
	"unicode"

	stripmd "github.com/writeas/go-strip-markdown"
)

const (
	// WordsPerMinute is the reading speed used for read time estimates.
	WordsPerMinute = 265
	ellipsis       = "…"
)

// PlainText strips Markdown syntax and collapses whitespace.
func PlainText(markdown string) string {
	return strings.Join(strings.Fields(stripmd.Strip(markdown)), " ")
}

// Prune shortens s to at most max runes, including a trailing ellipsis when it
// had to cut. Cuts fall on word boundaries where one exists.
func Prune(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	limit := max - 1
	if limit <= 0 {
		return ellipsis
	}

	cut := runes[:limit]
	if !unicode.IsSpace(runes[limit]) {
		for i := len(cut) - 1; i > 0; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + ellipsis
}

// Excerpt is the plain text of a Markdown body pruned to max runes.
func Excerpt(markdown string, max int) string {
	return Prune(PlainText(markdown), max)
}

// ReadTime estimates minutes to read a body. Empty bodies take zero minutes,
// everything else at least one.
func ReadTime(plain string) int {
	words := len(strings.Fields(plain))
	if words == 0 {
		return 0
	}
	return max(1, int(math.Round(float64(words)/WordsPerMinute)))
}
