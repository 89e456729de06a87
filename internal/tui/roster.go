package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcampus/internal/identity"
)

// rosterModel lists a batch of sampled students.
type rosterModel struct {
	students  []identity.Student
	cursor    int
	query     string
	filter    textinput.Model
	filtering bool
	flash     string
}

// resampleMsg asks the root for a new roster restricted to universities
// matching query. An empty query samples the whole catalog.
type resampleMsg struct {
	query string
}

// rosterMsg carries a freshly sampled roster.
type rosterMsg struct {
	students []identity.Student
	query    string
}

// noMatchMsg reports a filter that matched no catalog universities.
type noMatchMsg struct {
	query string
}

func newRosterModel(students []identity.Student) rosterModel {
	ti := textinput.New()
	ti.Placeholder = "university name"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.Width = 40

	return rosterModel{students: students, filter: ti}
}

func (m rosterModel) Init() tea.Cmd {
	return nil
}

func (m rosterModel) Update(msg tea.Msg) (rosterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case rosterMsg:
		m.students = msg.students
		m.query = msg.query
		m.cursor = 0
		return m, nil

	case noMatchMsg:
		m.flash = fmt.Sprintf("no universities match %q", msg.query)
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m rosterModel) handleFilterKey(msg tea.KeyMsg) (rosterModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		q := m.filter.Value()
		return m, func() tea.Msg { return resampleMsg{query: q} }
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m rosterModel) handleKey(msg tea.KeyMsg) (rosterModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "/":
		m.filtering = true
		m.filter.SetValue(m.query)
		cmd := m.filter.Focus()
		return m, cmd

	case "r":
		q := m.query
		return m, func() tea.Msg { return resampleMsg{query: q} }
	}

	if len(m.students) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.students)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		email := m.students[m.cursor].Email
		if err := copyToClipboard(email); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied " + email
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m rosterModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"

	if m.filtering {
		s += "  " + m.filter.View() + "\n\n"
	} else if m.query != "" {
		s += "  " + zstyle.MutedText.Render("filter: "+m.query) + "\n\n"
	}

	if len(m.students) == 0 {
		s += "  " + zstyle.MutedText.Render("no students") + "\n\n\n"
		return s
	}

	for i, st := range m.students {
		line := fmt.Sprintf("%-22s %s  %s  %-38s %s",
			truncate(st.FullName, 22),
			st.Gender,
			st.BirthDate,
			truncate(st.Email, 38),
			truncate(st.University, 40),
		)

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
