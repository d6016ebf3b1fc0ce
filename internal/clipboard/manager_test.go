package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalClipboard(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.UsesSystem())

	_, ok := m.Paste()
	assert.False(t, ok)

	require.NoError(t, m.Copy("hello"))
	text, ok := m.Paste()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	require.NoError(t, m.Copy(""))
	text, ok = m.Paste()
	assert.True(t, ok, "an empty copy is still a copy")
	assert.Empty(t, text)
}
