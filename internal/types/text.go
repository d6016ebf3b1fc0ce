// internal/types/text.go
package types

import "github.com/rivo/uniseg"

// TextLen returns the number of user-perceived characters (grapheme clusters) in text.
func TextLen(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// ClampOffset limits offset to [0, TextLen(text)].
func ClampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if n := TextLen(text); offset > n {
		return n
	}
	return offset
}

// TruncateGraphemes drops the last n grapheme clusters from text.
func TruncateGraphemes(text string, n int) string {
	if n <= 0 {
		return text
	}
	keep := TextLen(text) - n
	if keep <= 0 {
		return ""
	}
	end := 0
	gr := uniseg.NewGraphemes(text)
	for i := 0; i < keep && gr.Next(); i++ {
		_, end = gr.Positions()
	}
	return text[:end]
}
