package quiz

import "charm.land/bubbles/v2/key"

// keyMap holds the quiz form bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Choose    key.Binding
	Value     key.Binding
	Submit    key.Binding
	Reset     key.Binding
	Reshuffle key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous question"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next question"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous choice"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next choice"),
		),
		Choose: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "select choice"),
		),
		Value: key.NewBinding(
			key.WithKeys("0", "1", "2", "3"),
			key.WithHelp("0-3", "answer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Reshuffle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new questions"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Bindings returns every binding in display order, for the help screen.
func Bindings() []key.Binding {
	k := defaultKeyMap()
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.Choose, k.Value,
		k.Submit, k.Reset, k.Reshuffle, k.Help, k.Quit,
	}
}
