package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	tabCard  key.Binding
	tab3DS   key.Binding
	tabAPM   key.Binding
	nextTab  key.Binding
	send     key.Binding
	copyCurl key.Binding
	copyURL  key.Binding
	save     key.Binding
	saveNew  key.Binding
	delete   key.Binding
	reload   key.Binding
	format   key.Binding
	clear    key.Binding
	privacy  key.Binding
	softDesc key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
}

// Workbench actions are bound to ctrl chords so they never collide with
// typing into a focused field.
var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	tabCard:  key.NewBinding(key.WithKeys("alt+1")),
	tab3DS:   key.NewBinding(key.WithKeys("alt+2")),
	tabAPM:   key.NewBinding(key.WithKeys("alt+3")),
	nextTab:  key.NewBinding(key.WithKeys("ctrl+t")),
	send:     key.NewBinding(key.WithKeys("ctrl+g")),
	copyCurl: key.NewBinding(key.WithKeys("ctrl+y")),
	copyURL:  key.NewBinding(key.WithKeys("ctrl+u")),
	save:     key.NewBinding(key.WithKeys("ctrl+w")),
	saveNew:  key.NewBinding(key.WithKeys("ctrl+n")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	reload:   key.NewBinding(key.WithKeys("ctrl+r")),
	format:   key.NewBinding(key.WithKeys("ctrl+f")),
	clear:    key.NewBinding(key.WithKeys("ctrl+l")),
	privacy:  key.NewBinding(key.WithKeys("ctrl+p")),
	softDesc: key.NewBinding(key.WithKeys("ctrl+o")),
	info:     key.NewBinding(key.WithKeys("f1")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
