// Package tui provides an interactive list view over the task store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todoster/internal/domain"
)

// Model is the bubbletea model for the interactive task list. Every
// mutation (toggle, delete) is saved through the repository
// immediately, so quitting never loses state.
type Model struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	list   *domain.TaskList
	err    error
	keys   KeyMap
	cursor int
}

// NewModel loads the task list and builds the TUI model. Repeating
// tasks that are due are reset before the first frame, same as in the
// CLI commands.
func NewModel(tasks domain.TaskRepository, clock domain.Clock) (*Model, error) {
	list, err := tasks.Load()
	if err != nil {
		return nil, err
	}
	list.AutoResetRepeating(clock.Now())

	return &Model{
		tasks: tasks,
		clock: clock,
		list:  list,
		keys:  DefaultKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle()

	case key.Matches(keyMsg, m.keys.Delete):
		m.delete()
	}

	return m, nil
}

func (m *Model) toggle() {
	if m.cursor >= m.list.Len() {
		return
	}
	task := &m.list.Items[m.cursor]
	if task.Complete {
		task.MarkIncomplete()
	} else {
		task.MarkComplete(m.clock.Now())
	}
	m.err = m.tasks.Save(m.list)
}

func (m *Model) delete() {
	if m.cursor >= m.list.Len() {
		return
	}
	m.list.Delete([]int{m.cursor})
	if m.cursor >= m.list.Len() && m.cursor > 0 {
		m.cursor--
	}
	m.err = m.tasks.Save(m.list)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todoster"))
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(mutedStyle.Render("(no tasks)"))
		b.WriteString("\n")
	}

	for i, task := range m.list.Items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		check := "[ ]"
		line := fmt.Sprintf("[%d] %s", i, task.Text)
		if task.Complete {
			check = "[x]"
			line = doneStyle.Render(line)
		}
		if task.IsRepeating() {
			line += mutedStyle.Render(fmt.Sprintf(" (repeat: %dd)", *task.RepeatDays))
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, line))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("j/k move · space toggle · d delete · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the interactive task list.
func Run(tasks domain.TaskRepository, clock domain.Clock) error {
	m, err := NewModel(tasks, clock)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
