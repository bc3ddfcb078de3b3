package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/form"
)

// Form is the one schema-driven create/edit widget used by every entity
// screen. The schema supplies labels, input kinds and validation rules, so
// screens configure a form instead of hand-building one per record type.
type Form struct {
	Fields []form.Field
	Errors map[string]string

	inputs []textinput.Model
	focus  int
}

// NewForm builds a form over the schema, seeded with an initial draft
// (empty for create, the selected record's fields for edit).
func NewForm(fields []form.Field, initial form.Draft) *Form {
	f := &Form{
		Fields: fields,
		Errors: make(map[string]string),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Label
		ti.CharLimit = 256
		ti.Width = 40
		ti.SetValue(initial[field.Key])
		if field.Kind == form.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Update routes key input to the focused field and handles focus movement.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if IsNextField(key) {
			f.setFocus(f.focus + 1)
			return nil
		}
		if IsPrevField(key) {
			f.setFocus(f.focus - 1)
			return nil
		}
	}

	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}

	var cmd tea.Cmd
	prev := f.inputs[f.focus].Value()
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	// A keystroke on a field with a standing error re-validates so the
	// error clears as soon as the input becomes acceptable.
	if f.inputs[f.focus].Value() != prev && len(f.Errors) > 0 {
		f.revalidateExisting()
	}
	return cmd
}

func (f *Form) setFocus(i int) {
	if len(f.inputs) == 0 {
		return
	}
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// Draft snapshots the current field values.
func (f *Form) Draft() form.Draft {
	draft := make(form.Draft, len(f.Fields))
	for i, field := range f.Fields {
		draft[field.Key] = f.inputs[i].Value()
	}
	return draft
}

// Validate runs the full rule set and reports whether the draft is
// submittable.
func (f *Form) Validate() bool {
	f.Errors = form.Validate(f.Draft(), f.Fields)
	return len(f.Errors) == 0
}

// revalidateExisting clears errors that no longer apply without introducing
// new ones mid-typing.
func (f *Form) revalidateExisting() {
	fresh := form.Validate(f.Draft(), f.Fields)
	for key := range f.Errors {
		if msg, still := fresh[key]; still {
			f.Errors[key] = msg
		} else {
			delete(f.Errors, key)
		}
	}
}

func (f *Form) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		b.WriteString(FieldLabelStyle.Render(field.Label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := f.Errors[field.Key]; ok {
			b.WriteString(strings.Repeat(" ", 20))
			b.WriteString(ErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("tab next field   enter submit   esc cancel"))
	return b.String()
}
