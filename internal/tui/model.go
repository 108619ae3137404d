package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusForm focus = iota
	focusList
)

// Model is the root Bubble Tea model: the form above the list.
type Model struct {
	form *Form
	list *List
	keys KeyMap
	help help.Model

	focus focus
	width int

	log log.FieldLogger
}

// New wires the form and list to the session s.
func New(s *store.Session, logger log.FieldLogger) (Model, error) {
	actions, err := store.UseActions(s)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	logger = orDiscard(logger)
	form, err := NewForm(actions, logger)
	if err != nil {
		return Model{}, err
	}
	list, err := NewList(s.Store(), actions, logger)
	if err != nil {
		return Model{}, err
	}
	form.Focus()

	h := help.New()
	h.Styles.ShortKey = ui.Current().Help
	h.Styles.ShortDesc = ui.Current().Help

	return Model{
		form: form,
		list: list,
		keys: DefaultKeyMap(),
		help: h,
		log:  logger,
	}, nil
}

func (m Model) Form() *Form { return m.form }
func (m Model) List() *List { return m.list }

// Close releases the list's store subscription.
func (m Model) Close() { m.list.Close() }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchFocus):
			return m.toggleFocus()
		}

		if m.focus == focusForm {
			return m, m.form.Update(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.Up()
		case key.Matches(msg, m.keys.Down):
			m.list.Down()
		case key.Matches(msg, m.keys.Delete):
			if it := m.list.Selected(); it != nil {
				m.log.WithField("id", it.ID()).Debug("delete requested")
				it.Delete()
			}
		}
		return m, nil
	}

	// cursor blink and friends belong to the input
	return m, m.form.Update(msg)
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusForm {
		m.focus = focusList
		m.form.Blur()
		m.list.SetFocused(true)
		return m, nil
	}
	m.focus = focusForm
	m.list.SetFocused(false)
	return m, m.form.Focus()
}

func (m Model) View() string {
	t := ui.Current()
	sections := []string{
		t.Title.Render("Todos"),
		m.form.View(),
	}
	if lv := m.list.View(); lv != "" {
		sections = append(sections, "", lv)
	}
	sections = append(sections, "", m.help.View(m.keys))
	return ui.Panel(sections...)
}

// Run starts the interactive program on the alternate screen and blocks
// until the user quits.
func Run(s *store.Session, logger log.FieldLogger, opts ...tea.ProgramOption) error {
	m, err := New(s, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func orDiscard(logger log.FieldLogger) log.FieldLogger {
	if logger != nil {
		return logger
	}
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
