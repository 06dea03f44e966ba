package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/service"
	"github.com/colorpass/colorpass-go/internal/state"
)

const statusTimeout = 2 * time.Second

type clearStatusMsg struct{ seq int }

// GeneratorModel is the password generator screen.
type GeneratorModel struct {
	svc       *service.GeneratorService
	state     model.PasswordState
	status    string
	statusSeq int
	err       error
	width     int
	keys      generatorKeyMap
	help      help.Model
}

// NewGenerator creates the generator screen showing the service's current password.
func NewGenerator(svc *service.GeneratorService) GeneratorModel {
	return GeneratorModel{
		svc:   svc,
		state: svc.State(),
		width: defaultWidth,
		keys:  newGeneratorKeyMap(),
		help:  help.New(),
	}
}

func (m GeneratorModel) Init() tea.Cmd {
	return nil
}

func (m GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Shorter):
			return m.dispatch(state.SetLength{N: m.state.Length - 1}), nil
		case key.Matches(msg, m.keys.Longer):
			return m.dispatch(state.SetLength{N: m.state.Length + 1}), nil
		case key.Matches(msg, m.keys.Digits):
			return m.dispatch(state.ToggleDigits{}), nil
		case key.Matches(msg, m.keys.Symbols):
			return m.dispatch(state.ToggleSymbols{}), nil
		case key.Matches(msg, m.keys.Regenerate):
			return m.dispatch(state.Regenerate{}), nil
		case key.Matches(msg, m.keys.Copy):
			m.state = m.svc.Copy()
			m.status = "Copied to clipboard"
			m.statusSeq++
			seq := m.statusSeq
			return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
				return clearStatusMsg{seq: seq}
			})
		}
	}
	return m, nil
}

func (m GeneratorModel) dispatch(actions ...state.GeneratorAction) GeneratorModel {
	st, err := m.svc.Dispatch(actions...)
	if err != nil {
		slog.Error("regenerating password", "error", err)
		m.err = err
		return m
	}
	m.err = nil
	m.state = st
	return m
}

func (m GeneratorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Random Password Generator"))
	b.WriteString("\n")

	field := passwordStyle.Width(crypto.MaxLength + 2).Render(m.state.Password)
	copyBtn := copyButtonStyle.Render("Copy")
	row := lipgloss.JoinHorizontal(lipgloss.Center, field, " ", copyBtn)

	controls := fmt.Sprintf("%s %2d   %s Numbers   %s Characters",
		slider(m.state.Length),
		m.state.Length,
		checkbox(m.state.Digits),
		checkbox(m.state.Symbols),
	)

	b.WriteString(cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, row, "", controls)))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// slider draws the length track with one cell per selectable length.
func slider(length int) string {
	cells := crypto.MaxLength - crypto.MinLength + 1
	pos := crypto.Clamp(length) - crypto.MinLength
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", cells-pos-1)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// RunGenerator runs the generator screen until the user quits.
func RunGenerator(svc *service.GeneratorService) error {
	_, err := tea.NewProgram(NewGenerator(svc)).Run()
	return err
}
