package service

import (
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/palette"
	"github.com/colorpass/colorpass-go/internal/state"
)

// BackgroundService handles the background switcher.
type BackgroundService struct {
	store *state.Switcher
}

// NewBackgroundService creates a new BackgroundService starting at initial.
func NewBackgroundService(initial palette.Color) *BackgroundService {
	return &BackgroundService{store: state.NewSwitcher(initial)}
}

// Colors lists the selectable colors in button order.
func (s *BackgroundService) Colors() []model.ColorResponse {
	colors := palette.All()
	result := make([]model.ColorResponse, len(colors))
	for i, c := range colors {
		result[i] = toColorResponse(c)
	}
	return result
}

// Current returns the active background.
func (s *BackgroundService) Current() model.ColorResponse {
	return toColorResponse(s.store.Current())
}

// CurrentColor returns the active background as a palette value.
func (s *BackgroundService) CurrentColor() palette.Color {
	return s.store.Current()
}

// Select makes the named color the background.
func (s *BackgroundService) Select(name string) (model.ColorResponse, error) {
	c, err := palette.Parse(name)
	if err != nil {
		return model.ColorResponse{}, err
	}
	return s.SelectColor(c)
}

// SelectColor makes c the background.
func (s *BackgroundService) SelectColor(c palette.Color) (model.ColorResponse, error) {
	selected, err := s.store.Dispatch(state.SelectColor{Color: c})
	if err != nil {
		return model.ColorResponse{}, err
	}
	return toColorResponse(selected), nil
}

func toColorResponse(c palette.Color) model.ColorResponse {
	return model.ColorResponse{
		Name:  c.String(),
		Label: c.Label(),
		Hex:   c.Hex(),
	}
}
