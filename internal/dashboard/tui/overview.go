package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

type metricsLoadedMsg struct {
	metrics *domain.PlatformMetrics
	err     error
}

type overviewModel struct {
	client  *apiclient.Client
	metrics *domain.PlatformMetrics
	loading bool
	err     string
}

func newOverviewModel(c *apiclient.Client) overviewModel {
	return overviewModel{client: c, loading: true}
}

func (m overviewModel) Init() tea.Cmd {
	return m.load()
}

func (m overviewModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.PlatformMetrics(context.Background())
		if err != nil {
			return metricsLoadedMsg{err: err}
		}
		return metricsLoadedMsg{metrics: payload.Metrics}
	}
}

func (m overviewModel) Update(msg tea.Msg) (overviewModel, tea.Cmd) {
	if loaded, ok := msg.(metricsLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.err = loaded.err.Error()
		} else {
			m.metrics = loaded.metrics
			m.err = ""
		}
	}
	return m, nil
}

func (m overviewModel) View() string {
	if m.loading && m.metrics == nil {
		return " " + dimStyle.Render("loading platform metrics...")
	}
	if m.err != "" {
		return " " + statusErrStyle.Render("error: "+m.err)
	}
	if m.metrics == nil {
		return " " + dimStyle.Render("no metrics yet")
	}

	var sb strings.Builder
	stat := func(label string, value string) {
		sb.WriteString(fmt.Sprintf("   %-20s %s\n", labelStyle.Render(label), statValueStyle.Render(value)))
	}
	sb.WriteString(" " + headerRowStyle.Render("Platform at a glance") + "\n\n")
	stat("Total Gyms", fmt.Sprintf("%d", m.metrics.TotalGyms))
	stat("Total Users", fmt.Sprintf("%d", m.metrics.TotalUsers))
	stat("Consultants", fmt.Sprintf("%d", m.metrics.TotalConsultants))
	stat("Monthly Revenue", fmt.Sprintf("$%.2f", m.metrics.MonthlyRevenue))
	return sb.String()
}
