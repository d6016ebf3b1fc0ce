package session

import (
	"fmt"

	"github.com/bethropolis/blockdoc/internal/event"
	"github.com/bethropolis/blockdoc/internal/logger"
	"github.com/bethropolis/blockdoc/internal/ordering"
	"github.com/bethropolis/blockdoc/internal/types"
)

// keyFor computes the index for a slot between before and after.
func (s *Session) keyFor(before, after string) string {
	if ordering.GapExhausted(before, after) {
		logger.WarnTagf(logTag, "Session: no room between indices %s and %s, ordering will rely on collision nudge", before, after)
	}
	key := ordering.ComputeIndexWithFallback(before, after, s.initialIndex)

	// Halving a non-positive first key does not move it earlier.
	if a, ok := ordering.ParseIndex(after); ok {
		if _, hasBefore := ordering.ParseIndex(before); !hasBefore {
			if k, _ := ordering.ParseIndex(key); k >= a {
				key = ordering.FormatIndex(a - 1)
			}
		}
	}
	return key
}

// place inserts b into the working list at pos and re-sorts, returning b's final position.
func (s *Session) place(b types.Block, pos int) int {
	blocks := make([]types.Block, 0, len(s.blocks)+1)
	blocks = append(blocks, s.blocks[:pos]...)
	blocks = append(blocks, b)
	blocks = append(blocks, s.blocks[pos:]...)
	s.blocks = ordering.SortByIndex(blocks)
	return types.IndexOfBlock(s.blocks, b.ID)
}

// InsertBlock creates a paragraph block at position pos (0 <= pos <= Len) and selects it.
func (s *Session) InsertBlock(pos int, text string) (types.Block, error) {
	return s.InsertBlockOf(pos, types.NewBlock(text))
}

// AppendBlock adds a paragraph block after the last block.
func (s *Session) AppendBlock(text string) (types.Block, error) {
	return s.InsertBlock(len(s.blocks), text)
}

// InsertBlockOf inserts a copy of b at position pos, assigning it a fresh index.
// An empty ID is replaced with a generated one.
func (s *Session) InsertBlockOf(pos int, b types.Block) (types.Block, error) {
	if pos < 0 || pos > len(s.blocks) {
		return types.Block{}, fmt.Errorf("insert at %d of %d: %w", pos, len(s.blocks), ErrPositionOutOfRange)
	}
	b = b.Clone()
	if b.ID == "" {
		b.ID = types.NewBlock("").ID
	}
	if types.IndexOfBlock(s.blocks, b.ID) >= 0 {
		b.ID = types.NewBlock("").ID
	}
	if b.Type == "" {
		b.Type = types.BlockParagraph
	}

	before, after := ordering.Between(s.blocks, pos)
	b.FractionalIndex = s.keyFor(before, after)

	final := s.place(b, pos)
	s.selection = &types.Selection{BlockID: b.ID, Offset: types.TextLen(b.Text)}
	s.commit("insert")
	s.events.Dispatch(event.TypeBlockInserted, event.BlockData{BlockID: b.ID, Position: final, Index: b.FractionalIndex})
	return b.Clone(), nil
}

// MoveBlock moves block id so it ends up at position to, counted in the list
// without the moved block. Only the moved block's index changes.
func (s *Session) MoveBlock(id string, to int) error {
	from := types.IndexOfBlock(s.blocks, id)
	if from < 0 {
		return fmt.Errorf("move block %q: %w", id, ErrBlockNotFound)
	}
	if to < 0 || to > len(s.blocks)-1 {
		return fmt.Errorf("move block %q to %d: %w", id, to, ErrPositionOutOfRange)
	}
	if to == from {
		return nil
	}

	moved := s.blocks[from]
	rest := make([]types.Block, 0, len(s.blocks)-1)
	rest = append(rest, s.blocks[:from]...)
	rest = append(rest, s.blocks[from+1:]...)

	before, after := ordering.Between(rest, to)
	moved.FractionalIndex = s.keyFor(before, after)

	s.blocks = rest
	final := s.place(moved, to)
	s.commit("move")
	s.events.Dispatch(event.TypeBlockMoved, event.BlockData{BlockID: id, Position: final, Index: moved.FractionalIndex})
	return nil
}

// MoveUp moves block id one position earlier. It is a no-op at the top.
func (s *Session) MoveUp(id string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("move block %q: %w", id, ErrBlockNotFound)
	}
	if i == 0 {
		return nil
	}
	return s.MoveBlock(id, i-1)
}

// MoveDown moves block id one position later. It is a no-op at the bottom.
func (s *Session) MoveDown(id string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("move block %q: %w", id, ErrBlockNotFound)
	}
	if i == len(s.blocks)-1 {
		return nil
	}
	return s.MoveBlock(id, i+1)
}

// UpdateText replaces a block's text. Unchanged text commits nothing.
func (s *Session) UpdateText(id, text string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("update block %q: %w", id, ErrBlockNotFound)
	}
	if s.blocks[i].Text == text {
		return nil
	}

	s.blocks[i].Text = text
	if s.selection != nil && s.selection.BlockID == id {
		s.selection.Offset = types.ClampOffset(text, s.selection.Offset)
	}
	s.commit("update")
	s.events.Dispatch(event.TypeBlockUpdated, event.BlockData{BlockID: id, Position: i, Index: s.blocks[i].FractionalIndex})
	return nil
}

// SetProp sets a block attribute. An empty value deletes it.
func (s *Session) SetProp(id, key, value string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("update block %q: %w", id, ErrBlockNotFound)
	}
	b := &s.blocks[i]
	if value == "" {
		if _, ok := b.Props[key]; !ok {
			return nil
		}
		delete(b.Props, key)
	} else {
		if b.Props == nil {
			b.Props = make(map[string]string)
		}
		b.Props[key] = value
	}
	s.commit("set prop")
	s.events.Dispatch(event.TypeBlockUpdated, event.BlockData{BlockID: id, Position: i, Index: b.FractionalIndex})
	return nil
}

// RemoveBlock deletes block id. A selection inside it moves to a neighbor.
func (s *Session) RemoveBlock(id string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("remove block %q: %w", id, ErrBlockNotFound)
	}

	blocks := make([]types.Block, 0, len(s.blocks)-1)
	blocks = append(blocks, s.blocks[:i]...)
	blocks = append(blocks, s.blocks[i+1:]...)
	s.blocks = blocks

	if s.selection != nil && s.selection.BlockID == id {
		switch {
		case len(s.blocks) == 0:
			s.selection = nil
		case i > 0:
			s.selection = &types.Selection{BlockID: s.blocks[i-1].ID}
		default:
			s.selection = &types.Selection{BlockID: s.blocks[0].ID}
		}
	}
	s.commit("remove")
	s.events.Dispatch(event.TypeBlockRemoved, event.BlockData{BlockID: id, Position: -1})
	return nil
}

// CopyBlock puts the block's text on the clipboard.
func (s *Session) CopyBlock(id string) error {
	i := types.IndexOfBlock(s.blocks, id)
	if i < 0 {
		return fmt.Errorf("copy block %q: %w", id, ErrBlockNotFound)
	}
	return s.clipboard.Copy(s.blocks[i].Text)
}

// PasteAfter inserts a block holding the clipboard text after block id,
// or at the end when id is empty. It reports false when the clipboard is empty.
func (s *Session) PasteAfter(id string) (types.Block, bool, error) {
	text, ok := s.clipboard.Paste()
	if !ok {
		return types.Block{}, false, nil
	}
	pos := len(s.blocks)
	if id != "" {
		i := types.IndexOfBlock(s.blocks, id)
		if i < 0 {
			return types.Block{}, false, fmt.Errorf("paste after %q: %w", id, ErrBlockNotFound)
		}
		pos = i + 1
	}
	b, err := s.InsertBlock(pos, text)
	if err != nil {
		return types.Block{}, false, err
	}
	return b, true, nil
}
