package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next   key.Binding
	prev   key.Binding
	submit key.Binding
	copy   key.Binding
	recent key.Binding
	reload key.Binding
	about  key.Binding
	esc    key.Binding
	quit   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	next:   key.NewBinding(key.WithKeys("tab", "down")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit: key.NewBinding(key.WithKeys("enter")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	recent: key.NewBinding(key.WithKeys("ctrl+r")),
	reload: key.NewBinding(key.WithKeys("r")),
	about:  key.NewBinding(key.WithKeys("f1")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n", "esc")),
}
