package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

type gymCreatedMsg struct {
	err error
}

const (
	fieldName = iota
	fieldAddress
	fieldPhone
	fieldEmail
	fieldAdminEmail
	fieldCity
	fieldState
	fieldAmenities
	fieldCount
)

var createGymLabels = [fieldCount]string{
	"Name", "Address", "Phone", "Email", "Admin Email", "City", "State", "Amenities (comma separated)",
}

type createGymModel struct {
	client *apiclient.Client
	fields [fieldCount]string
	focus  int
	busy   bool
	err    string
}

func newCreateGymModel(c *apiclient.Client) createGymModel {
	return createGymModel{client: c}
}

func (m createGymModel) request() apiclient.CreateGymRequest {
	return apiclient.CreateGymRequest{
		Name:       strings.TrimSpace(m.fields[fieldName]),
		Address:    strings.TrimSpace(m.fields[fieldAddress]),
		Phone:      strings.TrimSpace(m.fields[fieldPhone]),
		Email:      strings.TrimSpace(m.fields[fieldEmail]),
		AdminEmail: strings.TrimSpace(m.fields[fieldAdminEmail]),
		Location: domain.Location{
			City:  strings.TrimSpace(m.fields[fieldCity]),
			State: strings.TrimSpace(m.fields[fieldState]),
		},
		Amenities: splitCSV(m.fields[fieldAmenities]),
	}
}

func (m createGymModel) submit() tea.Cmd {
	c := m.client
	req := m.request()
	return func() tea.Msg {
		return gymCreatedMsg{err: c.CreateGym(context.Background(), req)}
	}
}

func (m createGymModel) complete() bool {
	for i := 0; i < fieldCount; i++ {
		if strings.TrimSpace(m.fields[i]) == "" {
			return false
		}
	}
	return true
}

func (m createGymModel) Update(msg tea.Msg) (createGymModel, tea.Cmd) {
	switch msg := msg.(type) {
	case gymCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err.Error()
		}
		return m, nil
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % fieldCount
		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		case "enter":
			if m.focus < fieldCount-1 {
				m.focus++
				return m, nil
			}
			if !m.complete() {
				m.err = "all fields are required"
				return m, nil
			}
			m.busy = true
			m.err = ""
			return m, m.submit()
		default:
			m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
		}
	}
	return m, nil
}

func (m createGymModel) View() string {
	var sb strings.Builder
	sb.WriteString(" " + titleStyle.Render("Create Gym") + "\n\n")
	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		marker := "  "
		if i == m.focus {
			style = focusedLabelStyle
			marker = "> "
		}
		sb.WriteString(" " + marker + style.Render(createGymLabels[i]) + ": " + m.fields[i] + "\n")
	}
	sb.WriteString("\n")
	switch {
	case m.busy:
		sb.WriteString(" " + dimStyle.Render("creating gym...") + "\n")
	case m.err != "":
		sb.WriteString(" " + statusErrStyle.Render(m.err) + "\n")
	default:
		sb.WriteString(" " + dimStyle.Render("tab: next field · enter on last field: submit") + "\n")
	}
	return sb.String()
}
