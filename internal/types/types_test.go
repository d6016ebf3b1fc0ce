package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Blocks: []Block{
			{
				ID:              "a",
				Type:            BlockHeading,
				Text:            "Title",
				Props:           map[string]string{"level": "1"},
				FractionalIndex: "1",
			},
			{
				ID:   "b",
				Type: BlockList,
				Children: []Block{
					{ID: "b1", Text: "item", Props: map[string]string{"checked": "false"}},
				},
				FractionalIndex: "2",
			},
		},
		Selection: &Selection{BlockID: "a", Offset: 3},
	}
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	orig := sampleSnapshot()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Blocks[0].Text = "changed"
	c.Blocks[0].Props["level"] = "2"
	c.Blocks[1].Children[0].Props["checked"] = "true"
	c.Blocks[1].Children = append(c.Blocks[1].Children, Block{ID: "b2"})
	c.Selection.Offset = 0

	assert.Equal(t, sampleSnapshot(), orig)
}

func TestCloneBlocksNil(t *testing.T) {
	assert.Nil(t, CloneBlocks(nil))
	assert.Nil(t, Snapshot{}.Clone().Selection)
}

func TestNewBlock(t *testing.T) {
	a := NewBlock("x")
	b := NewBlock("x")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, BlockParagraph, a.Type)
	assert.Empty(t, a.OrderKey())
}

func TestFindBlock(t *testing.T) {
	s := sampleSnapshot()
	assert.Equal(t, 1, s.FindBlock("b"))
	assert.Equal(t, -1, s.FindBlock("b1"))
}

func TestTextHelpers(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		length int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"combining", "e\u0301te\u0301", 3},
		{"flag", "\U0001F1E9\U0001F1EA!", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.length, TextLen(tt.text))
			assert.Equal(t, tt.length, ClampOffset(tt.text, 100))
			assert.Equal(t, 0, ClampOffset(tt.text, -3))
		})
	}

	assert.Equal(t, "e\u0301t", TruncateGraphemes("e\u0301te\u0301", 1))
	assert.Equal(t, "", TruncateGraphemes("ab", 5))
	assert.Equal(t, "ab", TruncateGraphemes("ab", 0))
}
