// Package session owns one open document: its working blocks, selection,
// history and the events that describe changes to them.
//
// Every mutation edits the working copy and then commits a snapshot to
// history. Undo and Redo replace the working copy wholesale with the snapshot
// history returns.
package session

import (
	"errors"
	"fmt"

	"github.com/bethropolis/blockdoc/internal/clipboard"
	"github.com/bethropolis/blockdoc/internal/event"
	"github.com/bethropolis/blockdoc/internal/history"
	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/ordering"
	"github.com/bethropolis/blockdoc/internal/types"
)

var (
	ErrBlockNotFound      = errors.New("block not found")
	ErrPositionOutOfRange = errors.New("position out of range")
)

const logTag = "session"

// Options configures a Session. Zero values select defaults.
type Options struct {
	HistoryCapacity int
	InitialIndex    float64 // Key of the first block in an empty document
	SystemClipboard bool
	Events          *event.Manager
	Clipboard       *clipboard.Manager
}

// Session is a single document being edited.
type Session struct {
	blocks       []types.Block
	selection    *types.Selection
	history      *history.Manager
	events       *event.Manager
	clipboard    *clipboard.Manager
	initialIndex float64
}

// New opens a session over blocks. The input is copied, sorted by index and
// any block without a valid index is given one; the result becomes the
// initial history snapshot.
func New(opts Options, blocks []types.Block) *Session {
	s := &Session{
		history:      history.NewManager(opts.HistoryCapacity),
		events:       opts.Events,
		clipboard:    opts.Clipboard,
		initialIndex: opts.InitialIndex,
	}
	if s.events == nil {
		s.events = event.NewManager()
	}
	if s.clipboard == nil {
		s.clipboard = clipboard.NewManager(opts.SystemClipboard)
	}
	if s.initialIndex == 0 {
		s.initialIndex = ordering.DefaultFallback
	}
	s.Load(blocks)
	return s
}

// Load replaces the document and clears history.
func (s *Session) Load(blocks []types.Block) {
	s.blocks = s.assignMissingKeys(ordering.SortByIndex(types.CloneBlocks(blocks)))
	s.selection = nil
	if len(s.blocks) > 0 {
		s.selection = &types.Selection{BlockID: s.blocks[0].ID}
	}

	initial := s.Snapshot()
	s.history.Reset(&initial)
	logger.InfoTagf(logTag, "Session: loaded %d blocks", len(s.blocks))
	s.events.Dispatch(event.TypeHistoryReset, s.historyData())
}

// assignMissingKeys gives every block with an invalid key a valid one while
// keeping the order SortByIndex produced (invalid keys lead).
func (s *Session) assignMissingKeys(blocks []types.Block) []types.Block {
	firstValid := len(blocks)
	for i := range blocks {
		if _, ok := ordering.ParseIndex(blocks[i].FractionalIndex); ok {
			firstValid = i
			break
		}
	}
	if firstValid == 0 {
		return blocks
	}

	if firstValid == len(blocks) {
		prev := ""
		for i := range blocks {
			blocks[i].FractionalIndex = ordering.ComputeIndexWithFallback(prev, "", s.initialIndex)
			prev = blocks[i].FractionalIndex
		}
	} else {
		for i := firstValid - 1; i >= 0; i-- {
			blocks[i].FractionalIndex = s.keyFor("", blocks[i+1].FractionalIndex)
		}
	}
	logger.WarnTagf(logTag, "Session: assigned indices to %d block(s) with missing or invalid keys", firstValid)
	return blocks
}

// Events returns the session's event manager.
func (s *Session) Events() *event.Manager {
	return s.events
}

// Len returns the number of top-level blocks.
func (s *Session) Len() int {
	return len(s.blocks)
}

// Blocks returns a copy of the working blocks in order.
func (s *Session) Blocks() []types.Block {
	return types.CloneBlocks(s.blocks)
}

// Block returns a copy of the block with the given ID.
func (s *Session) Block(id string) (types.Block, error) {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return types.Block{}, fmt.Errorf("block %q: %w", id, ErrBlockNotFound)
	}
	return s.blocks[i].Clone(), nil
}

// Position returns the ordered position of the block with the given ID, or -1.
func (s *Session) Position(id string) int {
	return types.IndexOfBlock(s.blocks, id)
}

// Snapshot returns an independent copy of the working state.
func (s *Session) Snapshot() types.Snapshot {
	return types.Snapshot{Blocks: s.blocks, Selection: s.selection}.Clone()
}

// Selection returns the current selection, if any.
func (s *Session) Selection() (types.Selection, bool) {
	if s.selection == nil {
		return types.Selection{}, false
	}
	return *s.selection, true
}

// SetSelection places the caret in block id. The offset is clamped to the block's text.
// Selection changes are recorded with the next committed snapshot, not on their own.
func (s *Session) SetSelection(id string, offset int) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("select block %q: %w", id, ErrBlockNotFound)
	}
	s.selection = &types.Selection{BlockID: id, Offset: types.ClampOffset(s.blocks[i].Text, offset)}
	s.events.Dispatch(event.TypeSelectionChanged, event.SelectionData{Selection: s.copySelection()})
	return nil
}

// ClearSelection removes the caret.
func (s *Session) ClearSelection() {
	if s.selection == nil {
		return
	}
	s.selection = nil
	s.events.Dispatch(event.TypeSelectionChanged, event.SelectionData{})
}

func (s *Session) copySelection() *types.Selection {
	if s.selection == nil {
		return nil
	}
	sel := *s.selection
	return &sel
}

// CanUndo reports whether Undo would change the document.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would change the document.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// HistoryDepth returns the number of undo and redo steps available.
func (s *Session) HistoryDepth() (undo, redo int) {
	return s.history.UndoDepth(), s.history.RedoDepth()
}

// Undo restores the previous snapshot. It returns false when there is none.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.apply(snap)
	s.events.Dispatch(event.TypeUndo, s.historyData())
	return true
}

// Redo restores the next snapshot. It returns false when there is none.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.apply(snap)
	s.events.Dispatch(event.TypeRedo, s.historyData())
	return true
}

func (s *Session) apply(snap types.Snapshot) {
	s.blocks = snap.Blocks
	s.selection = snap.Selection
}

// commit records the working state as a new snapshot.
func (s *Session) commit(reason string) {
	s.history.PushSnapshot(s.Snapshot())
	logger.DebugTagf(logTag, "Session: committed snapshot after %s", reason)
	s.events.Dispatch(event.TypeSnapshotCommitted, s.historyData())
}

func (s *Session) historyData() event.HistoryData {
	return event.HistoryData{UndoDepth: s.history.UndoDepth(), RedoDepth: s.history.RedoDepth()}
}
