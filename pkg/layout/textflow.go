package layout

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharWidthRatio approximates the average glyph width of the rendering
// font as a fraction of the font size. The value is visually calibrated
// against Helvetica, not derived from font metrics; override it per document
// through the tuning configuration.
const DefaultCharWidthRatio = 0.45

// Wrap breaks text into lines that fit maxWidth at the given font size,
// using DefaultCharWidthRatio as the glyph-width heuristic.
func Wrap(text string, maxWidth, fontSize float64) []string {
	return WrapRatio(text, maxWidth, fontSize, DefaultCharWidthRatio)
}

// WrapRatio breaks text into lines that fit maxWidth at the given font size.
//
// The per-line character budget is estimated as maxWidth/(fontSize*ratio).
// Lines break on whitespace only; words are filled greedily. A single word
// longer than the budget is emitted as its own line rather than split.
//
// The result preserves the whitespace-delimited token sequence of the input:
// joining the returned lines with single spaces yields the same tokens in
// the same order. Empty or all-whitespace input returns nil.
func WrapRatio(text string, maxWidth, fontSize, ratio float64) []string {
	budget := int(maxWidth / (fontSize * ratio))
	if budget < 1 {
		budget = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	// Budget counts glyphs, so measure runes rather than bytes.
	length := utf8.RuneCountInString(line)
	for _, word := range words[1:] {
		wlen := utf8.RuneCountInString(word)
		if length+1+wlen <= budget {
			line += " " + word
			length += 1 + wlen
			continue
		}
		lines = append(lines, line)
		line = word
		length = wlen
	}
	return append(lines, line)
}
