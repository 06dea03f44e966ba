package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colorpass/colorpass-go/internal/palette"
	"github.com/colorpass/colorpass-go/internal/service"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// SwitcherModel is the background switcher screen.
type SwitcherModel struct {
	svc    *service.BackgroundService
	colors []palette.Color
	focus  int
	width  int
	height int
	keys   switcherKeyMap
	help   help.Model
}

// NewSwitcher creates the switcher screen with focus on the current color.
func NewSwitcher(svc *service.BackgroundService) SwitcherModel {
	focus := palette.Index(svc.CurrentColor())
	if focus < 0 {
		focus = 0
	}
	return SwitcherModel{
		svc:    svc,
		colors: palette.All(),
		focus:  focus,
		width:  defaultWidth,
		height: defaultHeight,
		keys:   newSwitcherKeyMap(),
		help:   help.New(),
	}
}

func (m SwitcherModel) Init() tea.Cmd {
	return nil
}

func (m SwitcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + len(m.colors) - 1) % len(m.colors)
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.colors)
		case key.Matches(msg, m.keys.Select):
			m.svc.SelectColor(m.colors[m.focus])
		case key.Matches(msg, m.keys.Jump):
			// "1" is the first button, "0" the tenth.
			idx := (int(msg.String()[0]-'0') + 9) % 10
			if idx < len(m.colors) {
				m.focus = idx
				m.svc.SelectColor(m.colors[idx])
			}
		}
	}
	return m, nil
}

func (m SwitcherModel) View() string {
	current := m.svc.CurrentColor()

	buttons := make([]string, len(m.colors))
	for i, c := range m.colors {
		style := swatch(c).Padding(0, 1).MarginRight(1)
		if i == m.focus {
			style = style.Bold(true).Underline(true)
		}
		buttons[i] = style.Render(c.Label())
	}
	bar := buttonBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	helpView := m.help.View(m.keys)

	panelHeight := max(m.height-lipgloss.Height(bar)-lipgloss.Height(helpView), 3)
	label := lipgloss.NewStyle().Bold(true).Underline(true).Render(strings.ToUpper(current.String()))
	panel := swatch(current).
		Width(m.width).
		Height(panelHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)

	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar),
		helpView,
	)
}

// RunSwitcher runs the switcher full-screen until the user quits.
func RunSwitcher(svc *service.BackgroundService) error {
	_, err := tea.NewProgram(NewSwitcher(svc), tea.WithAltScreen()).Run()
	return err
}
