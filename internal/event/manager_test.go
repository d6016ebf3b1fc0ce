package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndData(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeUndo, func(e Event) bool {
		data, ok := e.Data.(HistoryData)
		assert.True(t, ok)
		assert.Equal(t, 2, data.UndoDepth)
		got = append(got, "first")
		return false
	})
	m.Subscribe(TypeUndo, func(e Event) bool {
		got = append(got, "second")
		return false
	})
	m.Subscribe(TypeRedo, func(e Event) bool {
		got = append(got, "redo")
		return false
	})

	m.Dispatch(TypeUndo, HistoryData{UndoDepth: 2})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestConsumedEventStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeBlockMoved, func(Event) bool { calls++; return true })
	m.Subscribe(TypeBlockMoved, func(Event) bool { calls++; return false })

	m.Dispatch(TypeBlockMoved, BlockData{BlockID: "a"})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	calls := 0
	unsub := m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	unsub()
	unsub()
	m.Dispatch(TypeAppQuit, AppQuitData{})

	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	assert.NotPanics(t, func() { NewManager().Dispatch(TypeAppReady, nil) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "SnapshotCommitted", TypeSnapshotCommitted.String())
	assert.Equal(t, "Unknown", Type(999).String())
}
