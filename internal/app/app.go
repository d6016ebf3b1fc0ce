// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/blockdoc/internal/event"
	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/session"
	"github.com/bethropolis/blockdoc/internal/tui"
)

// Mode is the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// App ties the terminal UI to a document session.
type App struct {
	tui     *tui.TUI
	session *session.Session
	events  *event.Manager

	mode      Mode
	editText  string
	pending   bool // Insert mode is typing a block that does not exist yet
	pendingAt int
	message   string
	quit      bool
}

// New creates an application drawing to t and editing s.
func New(t *tui.TUI, s *session.Session) *App {
	a := &App{tui: t, session: s, events: s.Events()}

	a.events.Subscribe(event.TypeUndo, a.handleHistoryStatus)
	a.events.Subscribe(event.TypeRedo, a.handleHistoryStatus)
	a.events.Subscribe(event.TypeHistoryReset, a.handleHistoryStatus)
	return a
}

// Run processes input until the user quits.
func (a *App) Run() error {
	defer a.tui.Close()

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{})
	logger.Infof("App: ready with %d blocks", a.session.Len())
	a.draw()

	for !a.quit {
		switch ev := a.tui.PollEvent().(type) {
		case *tcell.EventKey:
			a.events.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
			a.HandleKey(ev)
		case *tcell.EventResize:
			a.tui.Screen().Sync()
		case nil:
			// Screen finalized.
			a.quit = true
			continue
		}
		a.draw()
	}

	a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	logger.Infof("App: quit")
	return nil
}

// Quitting reports whether the user asked to exit.
func (a *App) Quitting() bool {
	return a.quit
}

// Mode returns the current input mode.
func (a *App) Mode() Mode {
	return a.mode
}

func (a *App) handleHistoryStatus(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryData); ok {
		a.message = fmt.Sprintf("%v (undo:%d redo:%d)", e.Type, data.UndoDepth, data.RedoDepth)
	}
	return false
}

// selected returns the position and ID of the selected block, or -1 and "".
func (a *App) selected() (int, string) {
	sel, ok := a.session.Selection()
	if !ok {
		return -1, ""
	}
	return a.session.Position(sel.BlockID), sel.BlockID
}

func (a *App) view() tui.View {
	pos, _ := a.selected()
	undo, redo := a.session.HistoryDepth()
	return tui.View{
		Blocks:    a.session.Blocks(),
		Selected:  pos,
		Editing:   a.mode == ModeInsert,
		EditText:  a.editText,
		Pending:   a.pending,
		PendingAt: a.pendingAt,
		Mode:      a.mode.String(),
		UndoDepth: undo,
		RedoDepth: redo,
		Message:   a.message,
	}
}

func (a *App) draw() {
	tui.Draw(a.tui, a.view())
}
