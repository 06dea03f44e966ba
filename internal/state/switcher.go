package state

import (
	"sync"

	"github.com/colorpass/colorpass-go/internal/palette"
)

// SelectColor is a click on one of the color buttons.
type SelectColor struct{ Color palette.Color }

// Switcher is the background switcher view state.
type Switcher struct {
	mu        sync.Mutex
	current   palette.Color
	listeners []func(palette.Color)
}

// NewSwitcher creates the store. An invalid initial color falls back to palette.Default.
func NewSwitcher(initial palette.Color) *Switcher {
	if !initial.Valid() {
		initial = palette.Default
	}
	return &Switcher{current: initial}
}

// Current returns the selected background color.
func (s *Switcher) Current() palette.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Switcher) OnChange(fn func(palette.Color)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Dispatch sets the background to the selected color.
func (s *Switcher) Dispatch(a SelectColor) (palette.Color, error) {
	if !a.Color.Valid() {
		return s.Current(), palette.ErrUnknownColor
	}

	s.mu.Lock()
	s.current = a.Color
	listeners := append([]func(palette.Color){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(a.Color)
	}
	return a.Color, nil
}
