package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sivadev/folio/internal/forms"
)

// submitResultMsg carries the outcome of an in-flight submission back to
// the event loop. seq ties it to the attempt that started it; a stale seq
// means the page has moved on and the result is discarded.
type submitResultMsg struct {
	seq int
	err error
}

type fieldModel struct {
	def    forms.Field
	input   textinput.Model
	touched bool
}

// FormModel is one form instance: ordered text fields bound to a schema,
// an optional CAPTCHA token prompt, and a submit row driven by the
// submission state machine.
type FormModel struct {
	title     string
	fields    []fieldModel
	captcha   *textinput.Model // nil when the gate runs in bypass mode
	submitter *forms.Submitter

	// focus walks fields, then the captcha prompt, then the submit row.
	focus int
	seq   int

	styles Styles
	width  int
}

// NewFormModel builds a form page from a submitter. The submitter's schema
// decides the fields; its gate decides whether a token prompt appears.
func NewFormModel(title string, submitter *forms.Submitter, styles Styles) FormModel {
	defs := submitter.Schema().Fields()
	fields := make([]fieldModel, 0, len(defs))
	for i, def := range defs {
		ti := textinput.New()
		ti.Placeholder = def.Placeholder
		ti.CharLimit = 0
		ti.Width = 48
		if i == 0 {
			ti.Focus()
		}
		fields = append(fields, fieldModel{def: def, input: ti})
	}

	m := FormModel{
		title:     title,
		fields:    fields,
		submitter: submitter,
		styles:    styles,
		width:     64,
	}

	if submitter.Gate().Required() {
		ti := textinput.New()
		ti.Placeholder = "Paste the token issued by the challenge widget"
		ti.Width = 48
		m.captcha = &ti
	}

	return m
}

// Values snapshots the current field values.
func (m FormModel) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.def.Name] = f.input.Value()
	}
	return values
}

func (m FormModel) rows() int {
	n := len(m.fields)
	if m.captcha != nil {
		n++
	}
	return n + 1 // submit row
}

func (m FormModel) submitRow() int {
	return m.rows() - 1
}

func (m FormModel) captchaRow() int {
	if m.captcha == nil {
		return -1
	}
	return len(m.fields)
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inputWidth := msg.Width - 4
		if inputWidth > 60 {
			inputWidth = 60
		}
		if inputWidth > 0 {
			for i := range m.fields {
				m.fields[i].input.Width = inputWidth
			}
			if m.captcha != nil {
				m.captcha.Width = inputWidth
			}
		}
		return m, nil

	case submitResultMsg:
		if msg.seq != m.seq {
			// A result for an attempt we no longer care about.
			return m, nil
		}
		m.submitter.Finish(msg.err)
		if m.submitter.State() == forms.StateSuccess {
			m.resetInputs()
		}
		return m, nil

	case tea.KeyMsg:
		// The submit control is disabled while a submission is in flight;
		// only quitting remains available.
		if m.submitter.Submitting() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % m.rows())
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + m.rows()) % m.rows())
			return m, nil
		case "enter":
			if m.focus == m.submitRow() {
				return m.attemptSubmit()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus < len(m.fields) {
		f := &m.fields[m.focus]
		f.input, cmd = f.input.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			f.touched = true
		}
		return m, cmd
	}

	if m.focus == m.captchaRow() {
		before := m.captcha.Value()
		*m.captcha, cmd = m.captcha.Update(msg)
		after := m.captcha.Value()
		if after != before {
			// The token prompt stands in for the widget's callbacks:
			// content is a verify, clearing it is an expiry.
			if after != "" {
				m.submitter.Gate().Verify(after)
			} else {
				m.submitter.Gate().Expire()
			}
		}
		return m, cmd
	}

	return m, nil
}

func (m *FormModel) setFocus(row int) {
	m.focus = row
	for i := range m.fields {
		if i == row {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
	if m.captcha != nil {
		if row == m.captchaRow() {
			m.captcha.Focus()
		} else {
			m.captcha.Blur()
		}
	}
}

func (m FormModel) attemptSubmit() (FormModel, tea.Cmd) {
	values := m.Values()
	if err := m.submitter.Begin(values); err != nil {
		// Validation and gate misses surface inline; show untouched
		// fields' errors from now on.
		for i := range m.fields {
			m.fields[i].touched = true
		}
		return m, nil
	}

	m.seq++
	seq := m.seq
	sub := m.submitter
	return m, func() tea.Msg {
		return submitResultMsg{seq: seq, err: sub.Do(context.Background(), values)}
	}
}

func (m *FormModel) resetInputs() {
	for i := range m.fields {
		m.fields[i].input.Reset()
		m.fields[i].touched = false
	}
	if m.captcha != nil {
		m.captcha.Reset()
	}
	m.setFocus(0)
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	result := m.submitter.Schema().Validate(m.Values())

	for _, f := range m.fields {
		b.WriteString(m.styles.Label.Render(f.def.Label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
		if msg := result.Message(f.def.Name); msg != "" && f.touched {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}

	gate := m.submitter.Gate()
	if m.captcha != nil {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("CAPTCHA (challenge #%d)", gate.MountKey()+1)))
		b.WriteString("\n")
		b.WriteString(m.captcha.View())
		b.WriteString("\n")
		if !gate.Verified() && gate.Notice() == "" {
			b.WriteString(m.styles.GateNotice.Render("You must verify CAPTCHA before submitting."))
			b.WriteString("\n")
		}
	}
	if notice := gate.Notice(); notice != "" {
		b.WriteString(m.styles.GateNotice.Render(notice))
		b.WriteString("\n")
	}

	switch m.submitter.State() {
	case forms.StateSuccess:
		b.WriteString(m.styles.SuccessNotice.Render(m.submitter.Notice()))
		b.WriteString("\n")
	case forms.StateError:
		b.WriteString(m.styles.ErrorNotice.Render(m.submitter.Notice()))
		b.WriteString("\n")
	}
	// A gate miss leaves the machine idle but still carries a notice.
	if m.submitter.State() == forms.StateIdle && m.submitter.Notice() != "" {
		b.WriteString(m.styles.ErrorNotice.Render(m.submitter.Notice()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.submitter.Submitting():
		b.WriteString(m.styles.SubmitDisabled.Render("Sending..."))
	case m.submitter.CanSubmit(m.Values()):
		b.WriteString(m.styles.Submit.Render("Submit"))
	default:
		b.WriteString(m.styles.SubmitDisabled.Render("Submit"))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render("tab: next field • enter: submit • esc: quit"))
	b.WriteString("\n")

	return b.String()
}
