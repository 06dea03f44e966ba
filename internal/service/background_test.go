package service

import (
	"testing"

	"github.com/colorpass/colorpass-go/internal/palette"
)

func TestBackground_Initial(t *testing.T) {
	svc := NewBackgroundService(palette.Default)
	cur := svc.Current()

	if cur.Name != "olive" || cur.Label != "Olive" || cur.Hex != "#808000" {
		t.Errorf("unexpected initial background %+v", cur)
	}
}

func TestBackground_SelectBlue(t *testing.T) {
	svc := NewBackgroundService(palette.Default)

	resp, err := svc.Select("blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != "blue" {
		t.Errorf("expected blue, got %q", resp.Name)
	}
	if svc.Current().Name != "blue" || svc.CurrentColor() != palette.Blue {
		t.Errorf("label did not change from olive to blue: %+v", svc.Current())
	}
}

func TestBackground_SelectUnknown(t *testing.T) {
	svc := NewBackgroundService(palette.Default)

	_, err := svc.Select("purple")
	if err != palette.ErrUnknownColor {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
	if svc.Current().Name != "olive" {
		t.Errorf("background changed on error: %+v", svc.Current())
	}
}

func TestBackground_Colors(t *testing.T) {
	colors := NewBackgroundService(palette.Default).Colors()
	if len(colors) != 10 {
		t.Fatalf("expected 10 colors, got %d", len(colors))
	}
	if colors[2].Name != "blue" || colors[2].Label != "Blue" {
		t.Errorf("unexpected third color %+v", colors[2])
	}
}
