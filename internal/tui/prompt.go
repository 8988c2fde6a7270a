package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// promptModel asks for a single line of text, e.g. the description of a
// new card.
type promptModel struct {
	title string
	input textinput.Model
}

func newPromptModel(title, initial string) promptModel {
	in := textinput.New()
	in.Prompt = ""
	in.Width = 40
	in.SetValue(initial)
	in.Focus()
	return promptModel{title: title, input: in}
}

func (m promptModel) View() string {
	content := m.title + "\n\n"
	content += "[" + m.input.View() + "]\n\n"
	content += "enter save    esc cancel"
	return overlayBoxStyle.Render(content)
}
