package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	contactFieldName = iota
	contactFieldPhone
	contactFieldGroup
	contactFieldCount
)

type contactFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

// newContactFormModel prepares an empty form; group is prefilled with the
// selected private group, if any.
func newContactFormModel(group string) contactFormModel {
	inputs := make([]textinput.Model, contactFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 255
	}
	inputs[contactFieldName].Placeholder = "Ann Example"
	inputs[contactFieldPhone].Placeholder = "+1 555 0100"
	inputs[contactFieldGroup].Placeholder = "Family"
	inputs[contactFieldGroup].SetValue(group)
	inputs[contactFieldName].Focus()

	return contactFormModel{inputs: inputs}
}

func (m contactFormModel) values() (name, phone, group string) {
	return strings.TrimSpace(m.inputs[contactFieldName].Value()),
		strings.TrimSpace(m.inputs[contactFieldPhone].Value()),
		strings.TrimSpace(m.inputs[contactFieldGroup].Value())
}

func (m contactFormModel) moveFocus(delta int) contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + contactFieldCount) % contactFieldCount
	m.inputs[m.focus].Focus()
	return m
}

// update forwards msg to the focused input.
func (m contactFormModel) update(msg tea.Msg) (contactFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m contactFormModel) View() string {
	var b strings.Builder
	b.WriteString("Name:  [" + m.inputs[contactFieldName].View() + "]\n")
	b.WriteString("Phone: [" + m.inputs[contactFieldPhone].View() + "]\n")
	b.WriteString("Group: [" + m.inputs[contactFieldGroup].View() + "]")
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}

	return renderPage(titleStyle.Render("New contact"), b.String(), "tab: next field  enter: save  esc: cancel")
}
