// Package tui is a read-only browser over a stored simulated panel: one row
// per agent-period observation, scrollable, nothing editable.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jasklabor/internal/database/repository"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	missingStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " ")),
	Top:      key.NewBinding(key.WithKeys("home", "g")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// App browses the observations of one run.
type App struct {
	run    repository.Run
	obs    []repository.Observation
	cursor int
	offset int
	height int
}

func New(run repository.Run, obs []repository.Observation) *App {
	return &App{run: run, obs: obs, height: 24}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.height = msg.Height
		a.clampScroll()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Up):
			a.cursor--
		case key.Matches(msg, keys.Down):
			a.cursor++
		case key.Matches(msg, keys.PageUp):
			a.cursor -= a.pageSize()
		case key.Matches(msg, keys.PageDown):
			a.cursor += a.pageSize()
		case key.Matches(msg, keys.Top):
			a.cursor = 0
		case key.Matches(msg, keys.Bottom):
			a.cursor = len(a.obs) - 1
		}
		a.clampScroll()
	}
	return a, nil
}

func (a *App) pageSize() int {
	// header, title and footer take 4 lines
	if a.height > 5 {
		return a.height - 4
	}
	return 1
}

func (a *App) clampScroll() {
	if a.cursor > len(a.obs)-1 {
		a.cursor = len(a.obs) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	page := a.pageSize()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+page {
		a.offset = a.cursor - page + 1
	}
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("run %s · %d agents · seed %d", shortID(a.run.ID), a.run.Agents, a.run.Seed)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%6s %6s %-8s %6s %10s %10s", "agent", "period", "action", "state", "value", "wage")))
	b.WriteString("\n")

	end := a.offset + a.pageSize()
	if end > len(a.obs) {
		end = len(a.obs)
	}
	for i := a.offset; i < end; i++ {
		o := a.obs[i]
		wage := missingStyle.Render("      —")
		if o.Wage != nil {
			wage = fmt.Sprintf("%10.4f", *o.Wage)
		}
		line := fmt.Sprintf("%6d %6d %-8s %6d %10.4f %s", o.Agent, o.Period, o.Action, o.StateIndex, o.StateValue, wage)
		if i == a.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("%d/%d · j/k scroll · q quit", a.cursor+1, len(a.obs))))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
