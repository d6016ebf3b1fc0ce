// internal/types/snapshot.go
package types

// Selection marks a caret inside a block.
// Offset counts grapheme clusters, not bytes or runes.
type Selection struct {
	BlockID string
	Offset  int
}

// Snapshot is a complete, independent copy of editor state at one point in time.
// Treat it as immutable once handed to the history manager.
type Snapshot struct {
	Blocks    []Block
	Selection *Selection
}

// Clone returns a deep copy that shares no storage with s.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{Blocks: CloneBlocks(s.Blocks)}
	if s.Selection != nil {
		sel := *s.Selection
		c.Selection = &sel
	}
	return c
}

// FindBlock returns the position of the block with the given ID, or -1.
func (s Snapshot) FindBlock(id string) int {
	return IndexOfBlock(s.Blocks, id)
}

// IndexOfBlock returns the position of the block with the given ID in blocks, or -1.
func IndexOfBlock(blocks []Block, id string) int {
	for i := range blocks {
		if blocks[i].ID == id {
			return i
		}
	}
	return -1
}
