// Package history provides linear undo/redo over whole-document snapshots.
//
// Every snapshot crossing the Manager boundary is deep-copied, so no entry
// held in history, and no value handed back to a caller, ever aliases another
// snapshot or the live editor state.
package history

import (
	"sync"

	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/types"
)

const DefaultCapacity = 100

const logTag = "history"

// Manager holds the undo and redo stacks plus the current snapshot.
type Manager struct {
	mu        sync.Mutex
	undoStack []types.Snapshot
	redoStack []types.Snapshot
	current   *types.Snapshot
	capacity  int
}

// NewManager creates a history manager bounding each stack to capacity entries.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity}
}

// PushSnapshot commits s as the new current snapshot.
// The previous current snapshot moves onto the undo stack and redo history is discarded.
func (m *Manager) PushSnapshot(s types.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := s.Clone()
	if m.current != nil {
		m.undoStack = m.pushBounded(m.undoStack, m.current.Clone())
	}
	m.current = &next
	m.redoStack = nil

	logger.DebugTagf(logTag, "History: pushed snapshot (%d blocks). Undo: %d, Redo: 0",
		len(next.Blocks), len(m.undoStack))
}

// Undo steps back one snapshot and returns a copy of it.
// It reports false when there is nothing to undo.
func (m *Manager) Undo() (types.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undoStack) == 0 || m.current == nil {
		logger.DebugTagf(logTag, "History: nothing to undo")
		return types.Snapshot{}, false
	}

	var prev types.Snapshot
	m.undoStack, prev = pop(m.undoStack)
	m.redoStack = m.pushBounded(m.redoStack, m.current.Clone())
	m.current = &prev

	logger.DebugTagf(logTag, "History: undo. Undo: %d, Redo: %d", len(m.undoStack), len(m.redoStack))
	return prev.Clone(), true
}

// Redo steps forward one snapshot and returns a copy of it.
// It reports false when there is nothing to redo.
func (m *Manager) Redo() (types.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redoStack) == 0 || m.current == nil {
		logger.DebugTagf(logTag, "History: nothing to redo")
		return types.Snapshot{}, false
	}

	var next types.Snapshot
	m.redoStack, next = pop(m.redoStack)
	m.undoStack = m.pushBounded(m.undoStack, m.current.Clone())
	m.current = &next

	logger.DebugTagf(logTag, "History: redo. Undo: %d, Redo: %d", len(m.undoStack), len(m.redoStack))
	return next.Clone(), true
}

// Reset clears both stacks. Current becomes a copy of initial, or nothing if initial is nil.
func (m *Manager) Reset(initial *types.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.undoStack = nil
	m.redoStack = nil
	m.current = nil
	if initial != nil {
		c := initial.Clone()
		m.current = &c
	}
	logger.DebugTagf(logTag, "History: reset (has current: %v)", m.current != nil)
}

// CurrentSnapshot returns a copy of the current snapshot, if any.
func (m *Manager) CurrentSnapshot() (types.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return types.Snapshot{}, false
	}
	return m.current.Clone(), true
}

// CanUndo returns true if Undo would succeed.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && len(m.undoStack) > 0
}

// CanRedo returns true if Redo would succeed.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && len(m.redoStack) > 0
}

// UndoDepth returns the number of entries on the undo stack.
func (m *Manager) UndoDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack)
}

// RedoDepth returns the number of entries on the redo stack.
func (m *Manager) RedoDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack)
}

// Capacity returns the per-stack entry limit.
func (m *Manager) Capacity() int {
	return m.capacity
}

// pushBounded appends s, evicting the oldest entry first if the stack is full.
func (m *Manager) pushBounded(stack []types.Snapshot, s types.Snapshot) []types.Snapshot {
	if len(stack) >= m.capacity {
		// Shift down instead of reslicing so evicted snapshots can be collected.
		copy(stack, stack[1:])
		stack[len(stack)-1] = types.Snapshot{}
		stack = stack[:len(stack)-1]
		logger.DebugTagf(logTag, "History: evicted oldest entry (capacity %d)", m.capacity)
	}
	return append(stack, s)
}

func pop(stack []types.Snapshot) ([]types.Snapshot, types.Snapshot) {
	last := len(stack) - 1
	s := stack[last]
	stack[last] = types.Snapshot{}
	return stack[:last], s
}
