package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

type loginDoneMsg struct {
	resp *apiclient.LoginResponse
	err  error
}

type loginModel struct {
	client   *apiclient.Client
	email    string
	password string
	focus    int // 0 = email, 1 = password
	busy     bool
}

func newLoginModel(c *apiclient.Client) loginModel {
	return loginModel{client: c}
}

func (m loginModel) submit() tea.Cmd {
	c := m.client
	email, password := m.email, m.password
	return func() tea.Msg {
		resp, err := c.Login(context.Background(), email, password)
		return loginDoneMsg{resp: resp, err: err}
	}
}

// Update handles form keystrokes. The enclosing app owns loginDoneMsg.
func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}
	switch key.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % 2
	case "shift+tab", "up":
		m.focus = (m.focus + 1) % 2
	case "enter":
		if m.focus == 0 {
			m.focus = 1
			return m, nil
		}
		if m.email == "" || m.password == "" {
			return m, nil
		}
		m.busy = true
		return m, m.submit()
	default:
		if m.focus == 0 {
			m.email = editRune(m.email, key.String())
		} else {
			m.password = editRune(m.password, key.String())
		}
	}
	return m, nil
}

func (m loginModel) View() string {
	var sb strings.Builder
	sb.WriteString(" " + titleStyle.Render("Admin Login") + "\n\n")

	labels := []string{"Email", "Password"}
	values := []string{m.email, maskSecret(m.password)}
	for i := range labels {
		style := labelStyle
		marker := "  "
		if i == m.focus {
			style = focusedLabelStyle
			marker = "> "
		}
		sb.WriteString(" " + marker + style.Render(labels[i]) + ": " + values[i] + "\n")
	}

	sb.WriteString("\n")
	if m.busy {
		sb.WriteString(" " + dimStyle.Render("signing in...") + "\n")
	} else {
		sb.WriteString(" " + dimStyle.Render("tab: switch field · enter: sign in · ctrl+c: quit") + "\n")
	}
	return sb.String()
}
