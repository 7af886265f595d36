package tui

import "github.com/charmbracelet/bubbles/key"

// ViewerKeyMap defines the key bindings for the path viewer.
type ViewerKeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Play       key.Binding
	Step       key.Binding
	Finish     key.Binding
	Restart    key.Binding
	Regenerate key.Binding
	Explored   key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Table      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Play, k.Regenerate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Table},
		{k.Play, k.Step, k.Finish, k.Restart},
		{k.Faster, k.Slower, k.Explored},
		{k.Regenerate, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next strategy"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev strategy"),
		),
		Play: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "step"),
		),
		Finish: key.NewBinding(
			key.WithKeys("e", "end"),
			key.WithHelp("e", "jump to end"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "home"),
			key.WithHelp("r", "replay"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new maze"),
		),
		Explored: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle explored"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Table: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle table"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Switch}, {k.Reload, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs/strategies"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
