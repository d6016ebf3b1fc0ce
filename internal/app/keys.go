package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/types"
)

// HandleKey applies one key press to the session.
func (a *App) HandleKey(ev *tcell.EventKey) {
	if a.mode == ModeInsert {
		a.handleInsertKey(ev)
		return
	}
	a.handleNormalKey(ev)
}

func (a *App) handleNormalKey(ev *tcell.EventKey) {
	pos, id := a.selected()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyCtrlR:
		if !a.session.Redo() {
			a.message = "Nothing to redo"
		}
		return
	case tcell.KeyDown:
		a.selectAt(pos + 1)
		return
	case tcell.KeyUp:
		a.selectAt(pos - 1)
		return
	case tcell.KeyRune:
	default:
		return
	}

	var err error
	switch ev.Rune() {
	case 'q':
		a.quit = true
	case 'j':
		a.selectAt(pos + 1)
	case 'k':
		a.selectAt(pos - 1)
	case 'J':
		if id != "" {
			err = a.session.MoveDown(id)
		}
	case 'K':
		if id != "" {
			err = a.session.MoveUp(id)
		}
	case 'o':
		a.startPending(pos + 1)
	case 'O':
		if pos < 0 {
			pos = 0
		}
		a.startPending(pos)
	case 'i':
		if id != "" {
			b, _ := a.session.Block(id)
			a.mode = ModeInsert
			a.editText = b.Text
		}
	case 'x':
		if id != "" {
			err = a.session.RemoveBlock(id)
		}
	case 'u':
		if !a.session.Undo() {
			a.message = "Nothing to undo"
		}
	case 'y':
		if id != "" {
			if err = a.session.CopyBlock(id); err == nil {
				a.message = "Copied block"
			}
		}
	case 'p':
		var ok bool
		if _, ok, err = a.session.PasteAfter(id); err == nil && !ok {
			a.message = "Clipboard is empty"
		}
	}

	if err != nil {
		logger.Warnf("App: key %q failed: %v", ev.Rune(), err)
		a.message = err.Error()
	}
}

func (a *App) handleInsertKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.finishEdit()
	case tcell.KeyEnter:
		a.finishEdit()
		pos, _ := a.selected()
		a.startPending(pos + 1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.editText = types.TruncateGraphemes(a.editText, 1)
	case tcell.KeyRune:
		a.editText += string(ev.Rune())
	}
}

func (a *App) startPending(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > a.session.Len() {
		pos = a.session.Len()
	}
	a.mode = ModeInsert
	a.pending = true
	a.pendingAt = pos
	a.editText = ""
}

// finishEdit commits the edited text as one history step.
func (a *App) finishEdit() {
	defer func() {
		a.mode = ModeNormal
		a.pending = false
		a.editText = ""
	}()

	var err error
	if a.pending {
		_, err = a.session.InsertBlock(a.pendingAt, a.editText)
	} else if _, id := a.selected(); id != "" {
		err = a.session.UpdateText(id, a.editText)
		if err == nil {
			err = a.session.SetSelection(id, types.TextLen(a.editText))
		}
	}
	if err != nil {
		logger.Errorf("App: commit edit failed: %v", err)
		a.message = err.Error()
	}
}

func (a *App) selectAt(pos int) {
	blocks := a.session.Blocks()
	if len(blocks) == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(blocks) {
		pos = len(blocks) - 1
	}
	_ = a.session.SetSelection(blocks[pos].ID, 0)
}
