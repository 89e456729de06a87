// Package tui implements the root Bubble Tea model for zcampus.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcampus/internal/identity"
	"github.com/zarlcorp/zcampus/internal/university"
)

type viewID int

const (
	viewMenu viewID = iota
	viewGenerate
	viewRoster
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *identity.Generator
	catalog *university.Catalog
	count   int

	active   viewID
	menu     menuModel
	generate generateModel
	roster   rosterModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. A nil catalog means generic domains.
// count is the roster size.
func New(version string, gen *identity.Generator, catalog *university.Catalog, count int) Model {
	return Model{
		version: version,
		gen:     gen,
		catalog: catalog,
		count:   count,
		active:  viewMenu,
		menu:    newMenuModel(version, catalogStatus(catalog)),
	}
}

func catalogStatus(c *university.Catalog) string {
	if c.Len() == 0 {
		return "no catalog: generic domains"
	}
	return fmt.Sprintf("catalog: %d universities", c.Len())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case quickEmailMsg:
		return m.handleQuickEmail()

	case resampleMsg:
		return m.handleResample(msg.query)
	}

	return m.updateActive(msg)
}

func (m Model) navigate(v viewID) (tea.Model, tea.Cmd) {
	switch v {
	case viewGenerate:
		m.generate = newGenerateModel(m.gen.Sample(m.catalog))
	case viewRoster:
		m.roster = newRosterModel(m.gen.Roster(m.catalog, m.count))
	}
	m.active = v
	return m, nil
}

func (m Model) handleQuickEmail() (tea.Model, tea.Cmd) {
	s := m.gen.Sample(m.catalog)
	if err := copyToClipboard(s.Email); err != nil {
		m.menu.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.menu.flash = "copied " + s.Email
	return m, clearFlashAfter()
}

func (m Model) handleResample(query string) (tea.Model, tea.Cmd) {
	c := m.catalog
	if query != "" {
		matches := m.catalog.Search(query)
		if len(matches) == 0 {
			var cmd tea.Cmd
			m.roster, cmd = m.roster.Update(noMatchMsg{query: query})
			return m, cmd
		}
		c = &university.Catalog{Universities: matches}
	}

	m.roster, _ = m.roster.Update(rosterMsg{
		students: m.gen.Roster(c, m.count),
		query:    query,
	})
	return m, nil
}

func (m Model) View() string {
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewRoster:
		content = m.roster.View()
	}

	header := zstyle.RenderHeader("zcampus", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(m.helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Student"
	case viewRoster:
		return "Sample Roster"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func (m Model) helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewRoster:
		if m.roster.filtering {
			return []zstyle.HelpPair{
				{Key: "enter", Desc: "apply"},
				{Key: "esc", Desc: "cancel"},
			}
		}
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy email"},
			{Key: "r", Desc: "resample"},
			{Key: "/", Desc: "filter"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewRoster:
		m.roster, cmd = m.roster.Update(msg)
	}

	return m, cmd
}
