// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-guard/internal/binding"
	"github.com/MKhiriev/go-form-guard/internal/form"
	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/service"
)

// FormModel is the Bubble Tea model of the form screen. It renders one text
// input per form field with the live validation message next to it, and a
// submit button whose enabled state is bound to the form validity.
//
// Every keystroke that changes an input is written to the form, so messages,
// validity and the button are already up to date when View runs.
type FormModel struct {
	ctx         context.Context
	form        *form.Form
	submissions service.SubmissionService
	logger      *logger.Logger

	inputs  []textinput.Model
	focus   int
	button  *submitButton
	binding *binding.EnableBinding

	submitting   bool
	copyOnSubmit bool
	copyText     func(string) error
	lastID       string
	status       string

	overlay *errorOverlayModel
	confirm *confirmModel
}

// NewFormModel builds inputs for every field of f and binds the submit
// button to f's validity.
func NewFormModel(ctx context.Context, f *form.Form, submissions service.SubmissionService, copyOnSubmit bool, log *logger.Logger) *FormModel {
	fields := f.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.Definition.Placeholder
		in.Width = 40
		in.Prompt = ""
		if field.Definition.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(field.Value.Peek())
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	button := newSubmitButton("Submit")

	return &FormModel{
		ctx:          ctx,
		form:         f,
		submissions:  submissions,
		logger:       log,
		inputs:       inputs,
		button:       button,
		binding:      binding.NewEnableBinding(button, f.Valid(), log),
		copyOnSubmit: copyOnSubmit,
		copyText:     clipboard.WriteAll,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - submittedMsg    : clears submitting state; shows the id or the error.
//   - copiedMsg       : reports the clipboard result.
//   - tab / shift+tab : moves focus between inputs.
//   - enter           : submits when the button is enabled.
//   - ctrl+y          : copies the last submission id.
//   - ctrl+r          : opens the recent submissions page.
//   - esc             : asks before quitting when anything was typed.
//
// All other key events are forwarded to the focused input and the new value
// is written to the form.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return m, m.handleSubmitted(msg)
	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy to clipboard: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.id
		}
		return m, nil
	case tea.KeyMsg:
		if m.overlay != nil {
			if key.Matches(msg, keys.submit, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
		if m.confirm != nil {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirm = nil
				return m, func() tea.Msg { return quitMsg{} }
			case key.Matches(msg, keys.no):
				m.confirm = nil
			}
			return m, nil
		}
		// the form is not touched while a submit is in flight
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.next):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.prev):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		case key.Matches(msg, keys.copy):
			return m, m.copyLast()
		case key.Matches(msg, keys.recent):
			return m, func() tea.Msg { return NavigateTo{Page: pageRecent} }
		case key.Matches(msg, keys.esc):
			if m.hasInput() {
				m.confirm = &confirmModel{message: "Discard the entered values and quit?"}
				return m, nil
			}
			return m, func() tea.Msg { return quitMsg{} }
		}
	}

	if len(m.inputs) == 0 || m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncFocused()

	return m, cmd
}

// syncFocused writes the focused input to its field when it changed.
func (m *FormModel) syncFocused() {
	field := m.form.Fields()[m.focus]
	value := m.inputs[m.focus].Value()
	if value == field.Value.Peek() {
		return
	}

	if err := m.form.Set(field.Name(), value); err != nil {
		m.logger.Err(err).Str("field", field.Name()).Msg("cannot update field")
	}
}

func (m *FormModel) submit() tea.Cmd {
	if !m.button.Enabled() {
		m.status = "Submit is disabled until every required field is valid"
		return nil
	}

	m.submitting = true
	m.status = ""

	ctx, f, submissions := m.ctx, m.form, m.submissions
	return func() tea.Msg {
		submission, err := submissions.Submit(ctx, f)
		return submittedMsg{submission: submission, err: err}
	}
}

func (m *FormModel) handleSubmitted(msg submittedMsg) tea.Cmd {
	m.submitting = false

	if msg.err != nil {
		if errors.Is(msg.err, service.ErrFormInvalid) {
			m.status = humanizeError(msg.err)
			return nil
		}
		m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		return nil
	}

	m.lastID = msg.submission.SubmissionID
	m.status = "Saved as " + m.lastID

	if m.copyOnSubmit {
		return m.copyLast()
	}
	return nil
}

func (m *FormModel) copyLast() tea.Cmd {
	if m.lastID == "" {
		m.status = "Nothing submitted yet"
		return nil
	}

	id, copyText := m.lastID, m.copyText
	return func() tea.Msg {
		return copiedMsg{id: id, err: copyText(id)}
	}
}

func (m *FormModel) hasInput() bool {
	for _, v := range m.form.Values() {
		if v != "" {
			return true
		}
	}
	return false
}

// Close removes the submit button, which disposes its binding.
func (m *FormModel) Close() {
	m.button.Remove()
}

// View implements [tea.Model].
func (m *FormModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	for i, field := range m.form.Fields() {
		label := labelStyle
		if i == m.focus {
			label = focusedLabel
		}

		marker := " "
		if field.Cell.Required() {
			marker = requiredStyle.Render("*")
		}

		b.WriteString(label.Render(fitText(field.Label(), labelWidth-1)))
		b.WriteString(marker)
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("] ")

		status := field.Cell.Status()
		b.WriteString(styleFor(status.StyleTag).Render(status.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.button.View(m.submitting))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(
		strings.ToUpper(m.form.Title()),
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ ctrl+y: copy id │ ctrl+r: recent │ esc: quit",
	)
}

func (m *FormModel) focusNext() {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FormModel) focusPrev() {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
