// Package tui renders a read-only kanban board in the terminal using
// Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(32)

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				MarginBottom(1)

	taskTitleStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	priorityStyles = map[domain.TaskPriority]lipgloss.Style{
		domain.PriorityP1: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		domain.PriorityP2: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		domain.PriorityP3: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

// Model is the Bubble Tea model for the board view.
type Model struct {
	taskService service.TaskService
	teamService service.TeamService
	teamID      string

	teamName string
	kanban   *domain.Kanban
	err      error
}

func New(taskService service.TaskService, teamService service.TeamService, teamID string) Model {
	return Model{
		taskService: taskService,
		teamService: teamService,
		teamID:      teamID,
	}
}

type boardLoadedMsg struct {
	teamName string
	kanban   *domain.Kanban
}

type boardErrMsg struct{ err error }

func (m Model) loadBoard() tea.Msg {
	ctx := context.Background()

	team, err := m.teamService.Get(ctx, m.teamID)
	if err != nil {
		return boardErrMsg{err: err}
	}
	kanban, err := m.taskService.Kanban(ctx, m.teamID)
	if err != nil {
		return boardErrMsg{err: err}
	}
	return boardLoadedMsg{teamName: team.Name, kanban: kanban}
}

func (m Model) Init() tea.Cmd {
	return m.loadBoard
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.teamName = msg.teamName
		m.kanban = msg.kanban
		m.err = nil
		return m, nil
	case boardErrMsg:
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.loadBoard
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.\n", m.err)
	}
	if m.kanban == nil {
		return "Loading board...\n"
	}

	header := lipgloss.NewStyle().Bold(true).Render(m.teamName+" — kanban board") +
		dimStyle.Render("  (r refresh, q quit)")

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		renderColumn("Not started", m.kanban.NotStarted),
		renderColumn("In progress", m.kanban.InProgress),
		renderColumn("Blocked", m.kanban.Blocked),
		renderColumn("Completed", m.kanban.Completed),
	)

	return header + "\n\n" + columns + "\n"
}

func renderColumn(title string, tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(dimStyle.Render("—"))
	}
	for _, t := range tasks {
		badge := priorityStyles[t.Priority].Render(string(t.Priority))
		b.WriteString(fmt.Sprintf("%s %s\n", badge, taskTitleStyle.Render(t.Title)))
		if t.DueDate != nil {
			b.WriteString(dimStyle.Render("  due "+*t.DueDate) + "\n")
		}
	}

	return columnStyle.Render(b.String())
}
