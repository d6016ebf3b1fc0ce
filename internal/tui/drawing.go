// internal/tui/drawing.go
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/blockdoc/internal/types"
)

var (
	StyleDefault   = tcell.StyleDefault
	StyleSelected  = tcell.StyleDefault.Reverse(true)
	StyleMarker    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleHeading   = tcell.StyleDefault.Bold(true)
	StyleStatusBar = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// View is everything needed to draw one frame.
type View struct {
	Blocks    []types.Block
	Selected  int    // Position of the selected block, -1 for none
	Editing   bool   // The selected block (or the pending one) is being edited
	EditText  string // In-progress text while editing
	Pending   bool   // A new block is being typed but not yet inserted
	PendingAt int    // Position the pending block will be inserted at
	Mode      string
	UndoDepth int
	RedoDepth int
	Message   string
}

// drawString draws s at (x, y) clipped to maxX and returns the next free column.
// Width is measured per grapheme cluster.
func drawString(s tcell.Screen, x, y, maxX int, str string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		if x+width > maxX {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += width
	}
	return x
}

func fill(s tcell.Screen, x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// marker returns the gutter prefix for a block type.
func marker(b types.Block) string {
	switch b.Type {
	case types.BlockHeading:
		return strings.Repeat("#", headingLevel(b)) + " "
	case types.BlockQuote:
		return "> "
	case types.BlockList:
		return "- "
	case types.BlockCode:
		return "` "
	default:
		return "  "
	}
}

func headingLevel(b types.Block) int {
	level, err := strconv.Atoi(b.Props["level"])
	if err != nil || level < 1 {
		return 1
	}
	return level
}

// blockLines flattens a block to display lines.
func blockLines(b types.Block, text string) []string {
	if b.Type == types.BlockList && len(b.Children) > 0 && text == b.Text {
		lines := make([]string, 0, len(b.Children))
		for _, c := range b.Children {
			lines = append(lines, c.Text)
		}
		return lines
	}
	return strings.Split(text, "\n")
}

// Draw renders the block list and the status bar.
func Draw(t *TUI, v View) {
	s := t.screen
	width, height := s.Size()
	t.Clear()
	if height <= 0 {
		return
	}

	bodyHeight := height - 1
	y := 0
	for i := 0; i <= len(v.Blocks) && y < bodyHeight; i++ {
		if v.Pending && i == v.PendingAt {
			x := drawString(s, 0, y, width, "+ ", StyleMarker)
			x = drawString(s, x, y, width, v.EditText, StyleSelected)
			fill(s, x, y, width, StyleSelected)
			y++
		}
		if i == len(v.Blocks) {
			break
		}
		y = drawBlock(s, v, i, y, width, bodyHeight)
	}

	DrawStatusBar(t, v)
	t.Show()
}

func drawBlock(s tcell.Screen, v View, i, y, width, bodyHeight int) int {
	b := v.Blocks[i]
	selected := i == v.Selected && !v.Pending
	text := b.Text
	if selected && v.Editing {
		text = v.EditText
	}

	style := StyleDefault
	if b.Type == types.BlockHeading {
		style = StyleHeading
	}
	if selected {
		style = StyleSelected
	}

	prefix := marker(b)
	for n, line := range blockLines(b, text) {
		if y >= bodyHeight {
			break
		}
		gutter := prefix
		if n > 0 && b.Type != types.BlockList {
			gutter = strings.Repeat(" ", uniseg.StringWidth(prefix))
		}
		x := drawString(s, 0, y, width, gutter, StyleMarker)
		x = drawString(s, x, y, width, line, style)
		if selected {
			fill(s, x, y, width, style)
		}
		y++
	}
	return y
}

// DrawStatusBar renders the bottom line.
func DrawStatusBar(t *TUI, v View) {
	s := t.screen
	width, height := s.Size()
	y := height - 1

	left := fmt.Sprintf(" %s  blocks:%d  undo:%d redo:%d", v.Mode, len(v.Blocks), v.UndoDepth, v.RedoDepth)
	x := drawString(s, 0, y, width, left, StyleStatusBar)
	if v.Message != "" {
		x = drawString(s, x, y, width, "  "+v.Message, StyleStatusBar)
	}
	fill(s, x, y, width, StyleStatusBar)
}
