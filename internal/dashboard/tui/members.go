package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

// listPageSize is how many members each listing page requests.
const listPageSize = 10

type usersLoadedMsg struct {
	list *apiclient.UserList
	err  error
}

type consultantsLoadedMsg struct {
	list *apiclient.ConsultantList
	err  error
}

type usersModel struct {
	client  *apiclient.Client
	list    *apiclient.UserList
	page    int
	loading bool
	err     string
}

func newUsersModel(c *apiclient.Client) usersModel {
	return usersModel{client: c, page: 1, loading: true}
}

func (m usersModel) Init() tea.Cmd {
	return m.load()
}

func (m usersModel) load() tea.Cmd {
	c, page := m.client, m.page
	return func() tea.Msg {
		list, err := c.ListUsers(context.Background(), page, listPageSize)
		return usersLoadedMsg{list: list, err: err}
	}
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.list = msg.list
			m.err = ""
		}
	case tea.KeyMsg:
		if m.list == nil {
			return m, nil
		}
		switch msg.String() {
		case "n", "right":
			if m.list.Pagination.HasNextPage {
				m.page++
				return m, m.load()
			}
		case "p", "left":
			if m.list.Pagination.HasPrevPage {
				m.page--
				return m, m.load()
			}
		}
	}
	return m, nil
}

func (m usersModel) View() string {
	if m.loading && m.list == nil {
		return " " + dimStyle.Render("loading users...")
	}
	if m.err != "" {
		return " " + statusErrStyle.Render("error: "+m.err)
	}
	if m.list == nil {
		return " " + dimStyle.Render("no users yet")
	}

	var sb strings.Builder
	s := m.list.Stats
	sb.WriteString(fmt.Sprintf(" %s  total %s · active %s · admins %s · banned %s\n\n",
		headerRowStyle.Render("Users"),
		statValueStyle.Render(fmt.Sprintf("%d", s.TotalUsers)),
		statValueStyle.Render(fmt.Sprintf("%d", s.ActiveUsers)),
		statValueStyle.Render(fmt.Sprintf("%d", s.GymAdmins)),
		statValueStyle.Render(fmt.Sprintf("%d", s.BannedUsers))))
	sb.WriteString(memberTable(m.list.Data, false))
	sb.WriteString(paginationFooter(m.list.Pagination))
	return sb.String()
}

type consultantsModel struct {
	client  *apiclient.Client
	list    *apiclient.ConsultantList
	page    int
	loading bool
	err     string
}

func newConsultantsModel(c *apiclient.Client) consultantsModel {
	return consultantsModel{client: c, page: 1, loading: true}
}

func (m consultantsModel) Init() tea.Cmd {
	return m.load()
}

func (m consultantsModel) load() tea.Cmd {
	c, page := m.client, m.page
	return func() tea.Msg {
		list, err := c.ListConsultants(context.Background(), page, listPageSize)
		return consultantsLoadedMsg{list: list, err: err}
	}
}

func (m consultantsModel) Update(msg tea.Msg) (consultantsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case consultantsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.list = msg.list
			m.err = ""
		}
	case tea.KeyMsg:
		if m.list == nil {
			return m, nil
		}
		switch msg.String() {
		case "n", "right":
			if m.list.Pagination.HasNextPage {
				m.page++
				return m, m.load()
			}
		case "p", "left":
			if m.list.Pagination.HasPrevPage {
				m.page--
				return m, m.load()
			}
		}
	}
	return m, nil
}

func (m consultantsModel) View() string {
	if m.loading && m.list == nil {
		return " " + dimStyle.Render("loading consultants...")
	}
	if m.err != "" {
		return " " + statusErrStyle.Render("error: "+m.err)
	}
	if m.list == nil {
		return " " + dimStyle.Render("no consultants yet")
	}

	var sb strings.Builder
	s := m.list.Stats
	sb.WriteString(fmt.Sprintf(" %s  total %s · active %s · available %s\n\n",
		headerRowStyle.Render("Consultants"),
		statValueStyle.Render(fmt.Sprintf("%d", s.TotalConsultants)),
		statValueStyle.Render(fmt.Sprintf("%d", s.ActiveConsultants)),
		statValueStyle.Render(fmt.Sprintf("%d", s.AvailableConsultants))))
	sb.WriteString(memberTable(m.list.Data, true))
	sb.WriteString(paginationFooter(m.list.Pagination))
	return sb.String()
}

func memberTable(members []domain.User, consultant bool) string {
	var sb strings.Builder
	last := "ROLE"
	if consultant {
		last = "SPECIALIZATION"
	}
	sb.WriteString(" " + headerRowStyle.Render(fmt.Sprintf("%-22s %-28s %-10s %s", "NAME", "EMAIL", "STATUS", last)) + "\n")
	for _, u := range members {
		col := string(u.Role)
		if consultant {
			col = u.Specialization
		}
		sb.WriteString(fmt.Sprintf(" %-22s %-28s %-10s %s\n",
			truncate(u.Name, 22), truncate(u.Email, 28), string(u.Status), col))
	}
	return sb.String()
}

func paginationFooter(p domain.Pagination) string {
	nav := ""
	if p.HasPrevPage {
		nav += "p: prev  "
	}
	if p.HasNextPage {
		nav += "n: next"
	}
	footer := fmt.Sprintf("page %d of %d (%d total)", p.Page, p.TotalPages, p.Total)
	if nav != "" {
		footer += "  ·  " + strings.TrimSpace(nav)
	}
	return "\n " + dimStyle.Render(footer) + "\n"
}
