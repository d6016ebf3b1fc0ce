package app

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/blockdoc/internal/clipboard"
	"github.com/bethropolis/blockdoc/internal/session"
	"github.com/bethropolis/blockdoc/internal/tui"
)

func newTestApp(t *testing.T, text string) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	tuiManager, err := tui.NewWithScreen(screen)
	require.NoError(t, err)
	screen.SetSize(60, 10)
	t.Cleanup(tuiManager.Close)

	s := session.New(session.Options{Clipboard: clipboard.NewManager(false)}, session.FromParagraphs(text))
	return New(tuiManager, s), screen
}

func press(a *App, keys ...interface{}) {
	for _, k := range keys {
		switch v := k.(type) {
		case rune:
			a.HandleKey(tcell.NewEventKey(tcell.KeyRune, v, tcell.ModNone))
		case string:
			for _, r := range v {
				a.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
			}
		case tcell.Key:
			a.HandleKey(tcell.NewEventKey(v, 0, tcell.ModNone))
		}
	}
}

func texts(a *App) []string {
	var out []string
	for _, b := range a.session.Blocks() {
		out = append(out, b.Text)
	}
	return out
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(string(c.Runes))
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestNavigationAndReorder(t *testing.T) {
	a, _ := newTestApp(t, "one\n\ntwo\n\nthree")

	press(a, 'j', 'J')
	assert.Equal(t, []string{"one", "three", "two"}, texts(a))

	press(a, 'K', 'K')
	assert.Equal(t, []string{"two", "one", "three"}, texts(a))

	press(a, 'u')
	assert.Equal(t, []string{"one", "two", "three"}, texts(a))
	press(a, tcell.KeyCtrlR)
	assert.Equal(t, []string{"two", "one", "three"}, texts(a))
}

func TestInsertModeCommitsOnce(t *testing.T) {
	a, _ := newTestApp(t, "one")

	press(a, 'o', "new block", tcell.KeyBackspace2, tcell.KeyEscape)
	assert.Equal(t, ModeNormal, a.Mode())
	assert.Equal(t, []string{"one", "new bloc"}, texts(a))

	undo, _ := a.session.HistoryDepth()
	assert.Equal(t, 1, undo)

	press(a, 'i', "k", tcell.KeyEscape)
	assert.Equal(t, []string{"one", "new block"}, texts(a))

	press(a, 'u', 'u')
	assert.Equal(t, []string{"one"}, texts(a))
}

func TestEnterStartsNextBlock(t *testing.T) {
	a, _ := newTestApp(t, "one")

	press(a, 'o', "a", tcell.KeyEnter, "b", tcell.KeyEscape)
	assert.Equal(t, []string{"one", "a", "b"}, texts(a))
}

func TestDeleteCopyPaste(t *testing.T) {
	a, _ := newTestApp(t, "one\n\ntwo")

	press(a, 'y', 'j', 'p')
	assert.Equal(t, []string{"one", "two", "one"}, texts(a))

	press(a, 'x')
	assert.Equal(t, []string{"one", "two"}, texts(a))
}

func TestUndoWithEmptyHistoryShowsMessage(t *testing.T) {
	a, _ := newTestApp(t, "one")
	press(a, 'u')
	assert.Equal(t, "Nothing to undo", a.message)
	press(a, tcell.KeyCtrlR)
	assert.Equal(t, "Nothing to redo", a.message)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, "one")
	press(a, 'q')
	assert.True(t, a.Quitting())
}

func TestDraw(t *testing.T) {
	a, screen := newTestApp(t, "# Title\n\nbody text")
	press(a, 'j')
	a.draw()

	assert.Equal(t, "# Title", row(screen, 0))
	assert.Equal(t, "  body text", row(screen, 1))

	status := row(screen, 9)
	assert.Contains(t, status, "NORMAL")
	assert.Contains(t, status, "blocks:2")
	assert.Contains(t, status, "undo:0 redo:0")

	press(a, 'o', "draft")
	a.draw()
	assert.Equal(t, "+ draft", row(screen, 2))
	assert.Contains(t, row(screen, 9), "INSERT")
}
