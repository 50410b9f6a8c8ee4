// Package tui is the terminal admin dashboard. Every page behind the
// login form is entered through the route guard: navigation asks the
// guard for a decision and either renders the page or falls back to the
// login form with the refusal message.
package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
	"github.com/healthhub/gym-admin/internal/dashboard/credential"
	"github.com/healthhub/gym-admin/internal/dashboard/guard"
	"github.com/healthhub/gym-admin/internal/dashboard/navigation"
	"github.com/healthhub/gym-admin/internal/dashboard/session"
)

type view int

const (
	viewLogin view = iota
	viewOverview
	viewGyms
	viewCreateGym
	viewUsers
	viewConsultants
)

// sessionRestoredMsg is the outcome of the startup credential check.
type sessionRestoredMsg struct {
	decision guard.Decision
}

// accessDecidedMsg is the outcome of a guarded navigation.
type accessDecidedMsg struct {
	path     string
	decision guard.Decision
}

type loggedOutMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client   *apiclient.Client
	guard    *guard.Guard
	creds    credential.Store
	sessions *session.Store

	view      view
	path      string
	resolving bool

	status    string
	statusErr bool

	login       loginModel
	overview    overviewModel
	gyms        gymsModel
	createGym   createGymModel
	users       usersModel
	consultants consultantsModel

	width  int
	height int
}

func NewApp(c *apiclient.Client, g *guard.Guard, creds credential.Store, sessions *session.Store) App {
	return App{
		client:      c,
		guard:       g,
		creds:       creds,
		sessions:    sessions,
		view:        viewLogin,
		login:       newLoginModel(c),
		overview:    newOverviewModel(c),
		gyms:        newGymsModel(c),
		createGym:   newCreateGymModel(c),
		users:       newUsersModel(c),
		consultants: newConsultantsModel(c),
	}
}

func (a App) Init() tea.Cmd {
	return a.restoreSession()
}

// restoreSession resolves a persisted credential into a live session.
// Without a credential the app simply starts at the login form.
func (a App) restoreSession() tea.Cmd {
	g := a.guard
	creds := a.creds
	return func() tea.Msg {
		if _, err := creds.Get(); err != nil {
			return sessionRestoredMsg{decision: guard.Decision{Reason: guard.NoCredential, RedirectTo: guard.LoginPath}}
		}
		return sessionRestoredMsg{decision: g.Check(context.Background(), nil)}
	}
}

// navigate runs the guard for path and reports the decision.
func (a App) navigate(path string) tea.Cmd {
	g := a.guard
	route, ok := guard.Lookup(path)
	if !ok {
		return func() tea.Msg {
			return accessDecidedMsg{path: path, decision: guard.Decision{Reason: guard.UnknownFailure, RedirectTo: guard.LoginPath}}
		}
	}
	return func() tea.Msg {
		return accessDecidedMsg{path: path, decision: g.CheckRoute(context.Background(), route)}
	}
}

func (a App) logout() tea.Cmd {
	c := a.client
	creds := a.creds
	sessions := a.sessions
	return func() tea.Msg {
		// Best effort: revoke server-side, then always drop local state.
		_ = c.Logout(context.Background())
		_ = creds.Remove()
		sessions.Clear()
		return loggedOutMsg{}
	}
}

// defaultPath is where a fresh session lands: superadmins get the
// platform overview, gym admins go straight to their gym list.
func defaultPath(role domain.Role) string {
	if role == domain.RoleSuperadmin {
		return "/dashboard"
	}
	return "/gyms/all"
}

func viewFor(path string) view {
	switch path {
	case "/dashboard":
		return viewOverview
	case "/gyms/all":
		return viewGyms
	case "/gyms/create":
		return viewCreateGym
	case "/users/all":
		return viewUsers
	case "/consultants/all":
		return viewConsultants
	default:
		return viewLogin
	}
}

// enter switches to the page at path and kicks off its data load.
func (a App) enter(path string) (App, tea.Cmd) {
	a.path = path
	a.view = viewFor(path)
	switch a.view {
	case viewOverview:
		return a, a.overview.Init()
	case viewGyms:
		return a, a.gyms.Init()
	case viewCreateGym:
		a.createGym = newCreateGymModel(a.client)
		return a, nil
	case viewUsers:
		return a, a.users.Init()
	case viewConsultants:
		return a, a.consultants.Init()
	}
	return a, nil
}

// refuse falls back to the login form with the guard's message.
func (a App) refuse(d guard.Decision) App {
	a.view = viewLogin
	a.path = d.RedirectTo
	a.login = newLoginModel(a.client)
	if d.Reason != guard.NoCredential {
		a.status = d.Reason.Message()
		a.statusErr = true
	}
	return a
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case sessionRestoredMsg:
		a.resolving = false
		if !msg.decision.Granted {
			return a.refuse(msg.decision), nil
		}
		a.status = "Welcome back!"
		a.statusErr = false
		a.resolving = true
		return a, a.navigate(defaultPath(msg.decision.User.Role))

	case accessDecidedMsg:
		a.resolving = false
		if !msg.decision.Granted {
			return a.refuse(msg.decision), nil
		}
		return a.enter(msg.path)

	case loginDoneMsg:
		a.login.busy = false
		if msg.err != nil {
			a.status = loginFailureMessage(msg.err)
			a.statusErr = true
			return a, nil
		}
		if err := a.creds.Set(msg.resp.Token); err != nil {
			a.status = "could not persist session: " + err.Error()
			a.statusErr = true
			return a, nil
		}
		a.sessions.SetUser(session.User{
			UserID: msg.resp.UserID,
			Name:   msg.resp.Name,
			Email:  msg.resp.Email,
			Phone:  msg.resp.Phone,
			Role:   msg.resp.Role,
		})
		a.status = "Welcome back, " + msg.resp.Name + "!"
		a.statusErr = false
		a.resolving = true
		return a, a.navigate(defaultPath(msg.resp.Role))

	case loggedOutMsg:
		a.status = "Logged out"
		a.statusErr = false
		return a.refuse(guard.Decision{Reason: guard.NoCredential, RedirectTo: guard.LoginPath}), nil

	case gymCreatedMsg:
		var cmd tea.Cmd
		a.createGym, cmd = a.createGym.Update(msg)
		if msg.err == nil {
			a.status = "Gym created successfully"
			a.statusErr = false
			a.resolving = true
			return a, a.navigate("/gyms/all")
		}
		return a, cmd

	case tea.KeyMsg:
		if key := msg.String(); key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.view == viewLogin {
			var cmd tea.Cmd
			a.login, cmd = a.login.Update(msg)
			return a, cmd
		}
		if !a.editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.resolving = true
				return a, a.navigate("/dashboard")
			case "2":
				a.resolving = true
				return a, a.navigate("/gyms/all")
			case "3":
				a.resolving = true
				return a, a.navigate("/gyms/create")
			case "4":
				a.resolving = true
				return a, a.navigate("/users/all")
			case "5":
				a.resolving = true
				return a, a.navigate("/consultants/all")
			case "L":
				return a, a.logout()
			}
		}
	}

	return a.routeToPage(msg)
}

// editing reports whether keystrokes belong to a form.
func (a App) editing() bool {
	return a.view == viewCreateGym
}

func (a App) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewOverview:
		a.overview, cmd = a.overview.Update(msg)
	case viewGyms:
		a.gyms, cmd = a.gyms.Update(msg)
	case viewCreateGym:
		a.createGym, cmd = a.createGym.Update(msg)
	case viewUsers:
		a.users, cmd = a.users.Update(msg)
	case viewConsultants:
		a.consultants, cmd = a.consultants.Update(msg)
	}
	return a, cmd
}

func loginFailureMessage(err error) string {
	var httpErr *apiclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == 401 {
		return "Invalid email or password"
	}
	return "Login failed: " + err.Error()
}

func (a App) breadcrumb() string {
	trail := navigation.ResolveBreadcrumb(navigation.NavMap, a.path)
	parts := make([]string, 0, len(trail))
	for _, c := range trail {
		parts = append(parts, crumbStyle.Render(c.Title))
	}
	return " " + strings.Join(parts, crumbSepStyle.Render(" > "))
}

func (a App) header() string {
	title := " " + titleStyle.Render("HealthHub Admin")
	if u := a.sessions.Get().User; u != nil {
		title += dimStyle.Render("  ·  " + u.Name + " (" + string(u.Role) + ")")
	}
	return title
}

func (a App) statusLine() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return " " + statusErrStyle.Render(a.status)
	}
	return " " + statusOKStyle.Render(a.status)
}

func (a App) View() string {
	var sb strings.Builder
	sb.WriteString(a.header() + "\n")

	if a.view == viewLogin {
		sb.WriteString("\n" + a.login.View())
		if s := a.statusLine(); s != "" {
			sb.WriteString("\n" + s + "\n")
		}
		return sb.String()
	}

	sb.WriteString(a.breadcrumb() + "\n\n")

	if a.resolving || a.sessions.Get().Loading {
		sb.WriteString(" " + dimStyle.Render("checking access...") + "\n")
		return sb.String()
	}

	switch a.view {
	case viewOverview:
		sb.WriteString(a.overview.View())
	case viewGyms:
		sb.WriteString(a.gyms.View())
	case viewCreateGym:
		sb.WriteString(a.createGym.View())
	case viewUsers:
		sb.WriteString(a.users.View())
	case viewConsultants:
		sb.WriteString(a.consultants.View())
	}

	sb.WriteString("\n")
	if s := a.statusLine(); s != "" {
		sb.WriteString(s + "\n")
	}
	sb.WriteString(" " + dimStyle.Render("1: overview · 2: gyms · 3: create gym · 4: users · 5: consultants · L: logout · q: quit") + "\n")
	return sb.String()
}
