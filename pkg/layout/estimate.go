package layout

import (
	"strings"
	"unicode/utf8"
)

// estimateHeight derives a label's required vertical extent from its
// detail text. Empty or whitespace-only text yields the base height;
// otherwise the text is whitespace-normalized and wrapped at
// CharsPerLine, adding PerLineHeight per line. The result is never
// below BaseLabelHeight.
func estimateHeight(text string, cfg Config) float64 {
	trimmed := strings.Join(strings.Fields(text), " ")
	if trimmed == "" {
		return cfg.BaseLabelHeight
	}

	runes := utf8.RuneCountInString(trimmed)
	lines := (runes + cfg.CharsPerLine - 1) / cfg.CharsPerLine

	return cfg.BaseLabelHeight + float64(lines)*cfg.PerLineHeight
}
