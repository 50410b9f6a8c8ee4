package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

type gymsLoadedMsg struct {
	list *apiclient.GymList
	err  error
}

type gymsModel struct {
	client  *apiclient.Client
	list    *apiclient.GymList
	loading bool
	err     string
}

func newGymsModel(c *apiclient.Client) gymsModel {
	return gymsModel{client: c, loading: true}
}

func (m gymsModel) Init() tea.Cmd {
	return m.load()
}

func (m gymsModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		list, err := c.ListGyms(context.Background())
		return gymsLoadedMsg{list: list, err: err}
	}
}

func (m gymsModel) Update(msg tea.Msg) (gymsModel, tea.Cmd) {
	if loaded, ok := msg.(gymsLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.err = loaded.err.Error()
		} else {
			m.list = loaded.list
			m.err = ""
		}
	}
	return m, nil
}

func (m gymsModel) View() string {
	if m.loading && m.list == nil {
		return " " + dimStyle.Render("loading gyms...")
	}
	if m.err != "" {
		return " " + statusErrStyle.Render("error: "+m.err)
	}
	if m.list == nil || len(m.list.Data) == 0 {
		return " " + dimStyle.Render("no gyms registered yet")
	}

	var sb strings.Builder
	s := m.list.Stats
	sb.WriteString(fmt.Sprintf(" %s  total %s · active %s · revenue %s\n\n",
		headerRowStyle.Render("Gyms"),
		statValueStyle.Render(fmt.Sprintf("%d", s.TotalGyms)),
		statValueStyle.Render(fmt.Sprintf("%d", s.ActiveGyms)),
		statValueStyle.Render(fmt.Sprintf("$%.2f", s.MonthlyRevenue))))

	sb.WriteString(" " + headerRowStyle.Render(fmt.Sprintf("%-12s %-24s %-18s %s", "ID", "NAME", "CITY", "PRICE")) + "\n")
	for _, g := range m.list.Data {
		sb.WriteString(fmt.Sprintf(" %-12s %-24s %-18s $%.2f\n",
			g.GymID, truncate(g.Name, 24), truncate(g.Location.City, 18), g.Price))
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
