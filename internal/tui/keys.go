package tui

import "github.com/charmbracelet/bubbles/key"

type switcherKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Jump   key.Binding
	Quit   key.Binding
}

func (k switcherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Jump, k.Quit}
}

func (k switcherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newSwitcherKeyMap() switcherKeyMap {
	return switcherKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "pick color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type generatorKeyMap struct {
	Shorter    key.Binding
	Longer     key.Binding
	Digits     key.Binding
	Symbols    key.Binding
	Regenerate key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

func (k generatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shorter, k.Longer, k.Digits, k.Symbols, k.Regenerate, k.Copy, k.Quit}
}

func (k generatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newGeneratorKeyMap() generatorKeyMap {
	return generatorKeyMap{
		Shorter: key.NewBinding(
			key.WithKeys("left", "-", "h"),
			key.WithHelp("←/-", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "+", "=", "l"),
			key.WithHelp("→/+", "longer"),
		),
		Digits: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "numbers"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "characters"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
