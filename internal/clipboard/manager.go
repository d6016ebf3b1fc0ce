// Package clipboard moves block text between the editor and the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/blockdoc/internal/logger"
)

// Manager holds copied text. When the system clipboard is enabled and
// supported it is used as well; the internal copy is the fallback.
type Manager struct {
	mu       sync.Mutex
	system   bool
	internal string
	filled   bool
}

// NewManager creates a clipboard manager. useSystem is ignored on platforms
// without clipboard support.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal clipboard")
		useSystem = false
	}
	return &Manager{system: useSystem}
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.system
}

// Copy stores text. A failure to reach the system clipboard is returned
// but the text is still kept internally.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	m.internal = text
	m.filled = true
	m.mu.Unlock()

	if !m.system {
		logger.Debugf("Clipboard: copied %d bytes internally", len(text))
		return nil
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	logger.Debugf("Clipboard: copied %d bytes to system clipboard", len(text))
	return nil
}

// Paste returns the clipboard text and whether anything was available.
// The system clipboard wins when readable and non-empty.
func (m *Manager) Paste() (string, bool) {
	if m.system {
		text, err := sysclip.ReadAll()
		if err == nil && text != "" {
			return text, true
		}
		if err != nil {
			logger.Warnf("Clipboard: read system clipboard failed, using internal copy: %v", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.internal, m.filled
}
