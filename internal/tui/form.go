package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

// Form is the creation form: one text input and a create trigger.
// It only holds the action surface, so snapshot deliveries never touch it.
type Form struct {
	actions *store.Actions
	submit  key.Binding
	input   textinput.Model

	view    string
	dirty   bool
	renders int

	log log.FieldLogger
}

// NewForm builds a form that creates todos through actions.
func NewForm(actions *store.Actions, logger log.FieldLogger) (*Form, error) {
	if actions == nil {
		return nil, fmt.Errorf("NewForm: %w", store.ErrNoSession)
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 0 // titles are not limited
	return &Form{
		actions: actions,
		submit:  DefaultKeyMap().Submit,
		input:   ti,
		dirty:   true,
		log:     orDiscard(logger).WithField("unit", "form"),
	}, nil
}

func (f *Form) Focus() tea.Cmd {
	f.dirty = true
	return f.input.Focus()
}

func (f *Form) Blur() {
	f.dirty = true
	f.input.Blur()
}

// Value is the pending, uncommitted title.
func (f *Form) Value() string { return f.input.Value() }

func (f *Form) SetValue(s string) {
	f.dirty = true
	f.input.SetValue(s)
}

// Submit creates a todo from the pending value. The input keeps its
// value afterwards and is neither trimmed nor validated.
func (f *Form) Submit() model.Todo {
	return f.actions.Create(f.input.Value())
}

// Update routes msg to the text input; the submit key creates a todo.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, f.submit) {
		f.Submit()
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.dirty = true
	return cmd
}

// View returns the cached rendering unless the form changed since.
func (f *Form) View() string {
	if !f.dirty {
		return f.view
	}
	f.renders++
	f.log.WithField("renders", f.renders).Debug("render")
	t := ui.Current()
	f.view = f.input.View() + "  " + t.Accent.Render("[create todo]")
	f.dirty = false
	return f.view
}

// Renders counts how many times View actually rendered.
func (f *Form) Renders() int { return f.renders }
