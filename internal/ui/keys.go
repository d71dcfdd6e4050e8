package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Pages
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	JumpPage key.Binding
	Section  key.Binding

	// Fragment history
	HistoryBack    key.Binding
	HistoryForward key.Binding

	// Overlays
	Gallery    key.Binding
	Fullscreen key.Binding
	Back       key.Binding

	// Gallery cursor
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Go to page"),
		),
		Section: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to part"),
		),

		HistoryBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "History back"),
		),
		HistoryForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "History forward"),
		),

		Gallery: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Gallery"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fullscreen"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "Back"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Row down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open page"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Gallery, k.JumpPage, k.Help, k.Quit}
}

// GalleryHelp returns the footer bindings while the gallery is open.
func (k keyMap) GalleryHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns grouped bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last, k.JumpPage, k.Section},
		{k.HistoryBack, k.HistoryForward},
		{k.Gallery, k.Up, k.Down, k.Select, k.Back, k.Fullscreen},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
