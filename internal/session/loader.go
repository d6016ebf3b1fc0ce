package session

import (
	"strconv"
	"strings"

	"github.com/bethropolis/blockdoc/internal/ordering"
	"github.com/bethropolis/blockdoc/internal/types"
)

// FromParagraphs splits plain text on blank lines into blocks with increasing indices.
// "# " lines become headings, "> " quotes and "- " runs become lists.
func FromParagraphs(text string) []types.Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []types.Block
	prev := ""
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.Trim(para, "\n")
		if strings.TrimSpace(para) == "" {
			continue
		}
		b := parseParagraph(para)
		b.FractionalIndex = ordering.ComputeIndex(prev, "")
		prev = b.FractionalIndex
		blocks = append(blocks, b)
	}
	return blocks
}

func parseParagraph(para string) types.Block {
	b := types.NewBlock(para)

	switch {
	case strings.HasPrefix(para, "#"):
		level := len(para) - len(strings.TrimLeft(para, "#"))
		if level <= 6 && strings.HasPrefix(para[level:], " ") {
			b.Type = types.BlockHeading
			b.Text = strings.TrimSpace(para[level:])
			b.Props = map[string]string{"level": strconv.Itoa(level)}
		}
	case strings.HasPrefix(para, "> "):
		b.Type = types.BlockQuote
		lines := strings.Split(para, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimPrefix(strings.TrimPrefix(l, ">"), " ")
		}
		b.Text = strings.Join(lines, "\n")
	case strings.HasPrefix(para, "- "):
		b.Type = types.BlockList
		b.Text = ""
		prev := ""
		for _, l := range strings.Split(para, "\n") {
			item := types.NewBlock(strings.TrimSpace(strings.TrimPrefix(l, "- ")))
			item.FractionalIndex = ordering.ComputeIndex(prev, "")
			prev = item.FractionalIndex
			b.Children = append(b.Children, item)
		}
	}
	return b
}
