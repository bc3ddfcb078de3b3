package model

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/session"
	"warranty-tui/ui"
)

// DashboardModel is the per-role home screen: a menu of the management
// screens the stored role is allowed to reach. An unknown role gets the
// customer menu, matching the web client's routing fallback.
type DashboardModel struct {
	deps *Deps
	role session.Role
	menu *ui.Menu
}

func NewDashboardModel(deps *Deps) *DashboardModel {
	role := deps.Session.Role()
	return &DashboardModel{
		deps: deps,
		role: role,
		menu: ui.NewMenu(menuFor(role)),
	}
}

func menuFor(role session.Role) []ui.MenuItem {
	switch role {
	case session.RoleAdmin:
		return []ui.MenuItem{
			{ID: "customers", Label: "Customers", Hint: "manage customer records"},
			{ID: "parts", Label: "Parts", Hint: "manage the parts catalog"},
			{ID: "claims", Label: "Warranty claims", Hint: "review and update claims"},
			{ID: "feedbacks", Label: "Feedback", Hint: "customer feedback on claims"},
		}
	case session.RoleSCStaff:
		return []ui.MenuItem{
			{ID: "customers", Label: "Customers", Hint: "manage customer records"},
			{ID: "claims", Label: "Warranty claims", Hint: "review and update claims"},
			{ID: "feedbacks", Label: "Feedback", Hint: "customer feedback on claims"},
		}
	case session.RoleSCTechnician:
		return []ui.MenuItem{
			{ID: "claims", Label: "Warranty claims", Hint: "assigned claims"},
		}
	case session.RoleEVMStaff:
		return []ui.MenuItem{
			{ID: "parts", Label: "Parts", Hint: "manage the parts catalog"},
			{ID: "claims", Label: "Warranty claims", Hint: "review claims"},
		}
	default:
		return []ui.MenuItem{
			{ID: "myclaims", Label: "My claims", Hint: "warranty claims you filed"},
			{ID: "vehicles", Label: "My vehicles", Hint: "registered vehicles"},
			{ID: "services", Label: "Service history", Hint: "past service visits"},
		}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (*DashboardModel, tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ui.IsUp(msg) {
			m.menu.Up()
		}
		if ui.IsDown(msg) {
			m.menu.Down()
		}
		if msg.String() == "x" {
			return m, m.logoutCmd(), nil
		}
		if ui.IsEnter(msg) {
			if item := m.menu.Selected(); item != nil {
				var s Screen
				switch item.ID {
				case "customers":
					s = CustomersScreen()
				case "parts":
					s = PartsScreen()
				case "claims":
					s = ClaimsScreen()
				case "feedbacks":
					s = FeedbacksScreen()
				case "myclaims":
					s = MyClaimsScreen()
				case "vehicles":
					s = VehiclesScreen()
				case "services":
					s = ServicesScreen()
				default:
					return m, nil, nil
				}
				return m, nil, &s
			}
		}
	}
	return m, nil, nil
}

// logoutCmd tells the backend, then clears the session; the root model's
// subscription does the navigation.
func (m *DashboardModel) logoutCmd() tea.Cmd {
	client := m.deps.API
	sess := m.deps.Session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_ = client.Logout(ctx) // best effort; local clear is what matters
		sess.Clear()
		return nil
	}
}

func (m *DashboardModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	username := m.deps.Session.Get(session.KeyUsername)

	splitHeight := height - 5
	if splitHeight < 10 {
		splitHeight = 10
	}

	var left []string
	left = append(left, ui.HeaderStyle.Render("EV WARRANTY SERVICE"))
	left = append(left, "")
	left = append(left, fmt.Sprintf("Signed in as %s", username))
	left = append(left, ui.DimStyle.Render(m.role.String()))
	left = append(left, "")
	left = append(left, ui.DimStyle.Render("x sign out   q quit"))

	var right strings.Builder
	right.WriteString(ui.HeaderStyle.Render("DASHBOARD"))
	right.WriteString("\n")
	right.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	right.WriteString("\n\n")
	right.WriteString(m.menu.View())
	right.WriteString("\n\n")
	right.WriteString(ui.DimStyle.Render("↑↓ navigate   enter select"))

	split := ui.RenderSplitPane(strings.Join(left, "\n"), right.String(), width-2, splitHeight)
	return "\n\n" + split
}
