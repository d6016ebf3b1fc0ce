// internal/event/event.go
package event

import (
	"github.com/bethropolis/blockdoc/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// History
	TypeSnapshotCommitted // A new snapshot was pushed
	TypeUndo              // The session moved back one snapshot
	TypeRedo              // The session moved forward one snapshot
	TypeHistoryReset      // History was cleared (document loaded)

	// Document
	TypeBlockInserted
	TypeBlockRemoved
	TypeBlockMoved
	TypeBlockUpdated
	TypeSelectionChanged

	// Input
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeSnapshotCommitted:
		return "SnapshotCommitted"
	case TypeUndo:
		return "Undo"
	case TypeRedo:
		return "Redo"
	case TypeHistoryReset:
		return "HistoryReset"
	case TypeBlockInserted:
		return "BlockInserted"
	case TypeBlockRemoved:
		return "BlockRemoved"
	case TypeBlockMoved:
		return "BlockMoved"
	case TypeBlockUpdated:
		return "BlockUpdated"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// HistoryData accompanies history events.
type HistoryData struct {
	UndoDepth int
	RedoDepth int
}

// BlockData identifies the block an event is about.
type BlockData struct {
	BlockID  string
	Position int    // Position in the ordered list after the change (-1 if removed)
	Index    string // Fractional index after the change
}

// SelectionData carries the new selection, nil when cleared.
type SelectionData struct {
	Selection *types.Selection
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppReadyData struct{}

type AppQuitData struct{}
