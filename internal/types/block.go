// internal/types/block.go
package types

import "github.com/google/uuid"

// BlockType names the kind of content a block carries.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
	BlockList      BlockType = "list"
)

// Block is a single unit of document content.
// FractionalIndex is used purely for ordering, never for identity.
type Block struct {
	ID              string
	Type            BlockType
	Text            string
	Props           map[string]string // Free-form attributes (heading level, code language, ...)
	Children        []Block           // Nested blocks (list items, toggles)
	FractionalIndex string
}

// NewBlock creates a paragraph block with a fresh identifier and no index.
func NewBlock(text string) Block {
	return Block{
		ID:   uuid.NewString(),
		Type: BlockParagraph,
		Text: text,
	}
}

// OrderKey returns the block's fractional index.
func (b Block) OrderKey() string {
	return b.FractionalIndex
}

// Clone returns a deep copy of the block. Props and Children are never shared.
func (b Block) Clone() Block {
	c := b
	if b.Props != nil {
		c.Props = make(map[string]string, len(b.Props))
		for k, v := range b.Props {
			c.Props[k] = v
		}
	}
	if b.Children != nil {
		c.Children = CloneBlocks(b.Children)
	}
	return c
}

// CloneBlocks deep-copies a block slice. A nil input yields nil.
func CloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i := range blocks {
		out[i] = blocks[i].Clone()
	}
	return out
}
