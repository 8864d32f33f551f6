package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	submit   key.Binding
	next     key.Binding
	prev     key.Binding
	finish   key.Binding
	abandon  key.Binding
	refresh  key.Binding
	discard  key.Binding
	logout   key.Binding
	articles key.Binding
	board    key.Binding
	profile  key.Binding
	like     key.Binding
	copy     key.Binding
	theme    key.Binding
	inc      key.Binding
	dec      key.Binding
	save     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	next:     key.NewBinding(key.WithKeys("ctrl+n")),
	prev:     key.NewBinding(key.WithKeys("ctrl+p")),
	finish:   key.NewBinding(key.WithKeys("ctrl+f")),
	abandon:  key.NewBinding(key.WithKeys("ctrl+x")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	discard:  key.NewBinding(key.WithKeys("d")),
	logout:   key.NewBinding(key.WithKeys("o")),
	articles: key.NewBinding(key.WithKeys("a")),
	board:    key.NewBinding(key.WithKeys("b")),
	profile:  key.NewBinding(key.WithKeys("p")),
	like:     key.NewBinding(key.WithKeys("f")),
	copy:     key.NewBinding(key.WithKeys("c")),
	theme:    key.NewBinding(key.WithKeys("t")),
	inc:      key.NewBinding(key.WithKeys("+", "=")),
	dec:      key.NewBinding(key.WithKeys("-")),
	save:     key.NewBinding(key.WithKeys("s")),
}
