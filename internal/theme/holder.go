package theme

import (
	"errors"
	"sync"
)

// ErrThemeNotLoaded is returned when the current theme is read before any
// theme has been loaded.
var ErrThemeNotLoaded = errors.New("no theme loaded")

// Holder is a single-slot store for the current theme. It starts empty, is
// set wholesale on theme load or swap, and is read-mostly afterwards.
// Style-tree builders take a *Theme explicitly; the holder exists for the
// preview UI's swap path.
type Holder struct {
	mu      sync.RWMutex
	current *Theme
}

// Load replaces the current theme.
func (h *Holder) Load(t *Theme) {
	h.mu.Lock()
	h.current = t
	h.mu.Unlock()
}

// Current returns the loaded theme, or ErrThemeNotLoaded before the first
// Load.
func (h *Holder) Current() (*Theme, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil, ErrThemeNotLoaded
	}
	return h.current, nil
}
