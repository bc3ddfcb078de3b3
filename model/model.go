package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/api"
	"warranty-tui/image"
	"warranty-tui/session"
	"warranty-tui/ui"
)

// Deps are the shared collaborators every screen needs.
type Deps struct {
	API      *api.Client
	Session  *session.Store
	DataPath string
}

// sessionMsg forwards a session store event into the program loop.
type sessionMsg session.Event

// Model is the navigation root: it owns the screen stack, dispatches
// updates to the active screen model, and watches the session store so a
// cleared token bounces the user back to login from anywhere.
type Model struct {
	deps   *Deps
	events <-chan session.Event

	screen  Screen
	history []Screen

	login       *LoginModel
	dashboard   *DashboardModel
	customers   *ResourceModel[api.Customer]
	parts       *ResourceModel[api.Part]
	claims      *ResourceModel[api.WarrantyClaim]
	myClaims    *ResourceModel[api.WarrantyClaim]
	vehicles    *ResourceModel[api.Vehicle]
	feedbacks   *ResourceModel[api.Feedback]
	services    *ResourceModel[api.ServiceHistory]
	claimDetail *ClaimDetailModel

	width  int
	height int

	pendingImageClear uint32
}

func New(deps *Deps) *Model {
	m := &Model{
		deps:   deps,
		events: deps.Session.Subscribe(),
	}
	if deps.Session.LoggedIn() {
		m.screen = DashboardScreen()
		m.dashboard = NewDashboardModel(deps)
	} else {
		m.screen = LoginScreen()
		m.login = NewLoginModel(deps)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.initScreen(m.screen), m.watchSession())
}

// watchSession blocks on the store's event channel inside a command and
// re-arms itself after every event.
func (m *Model) watchSession() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return sessionMsg(ev)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionMsg:
		// Logout, or a 401 clearing the token, forces the next protected
		// screen back to login without any screen polling for it.
		loggedOut := msg.Cleared || (msg.Key == session.KeyToken && msg.Value == "")
		if loggedOut && m.screen.Type != ScreenLogin {
			m.history = nil
			cmd := m.navigateCmd(LoginScreen())
			return m, tea.Batch(cmd, m.watchSession())
		}
		return m, m.watchSession()

	case tea.KeyMsg:
		if ui.IsQuit(msg) && !m.typing() {
			fmt.Print(image.ClearAll())
			return m, tea.Quit
		}
		if ui.IsBack(msg) && m.backable() {
			return m, m.goBack()
		}
	}

	// Delegate to the active screen
	var cmd tea.Cmd
	var nav *Screen

	switch m.screen.Type {
	case ScreenLogin:
		m.login, cmd, nav = m.login.Update(msg)
	case ScreenDashboard:
		m.dashboard, cmd, nav = m.dashboard.Update(msg)
	case ScreenCustomers:
		m.customers, cmd, nav = m.customers.Update(msg)
	case ScreenParts:
		m.parts, cmd, nav = m.parts.Update(msg)
	case ScreenClaims:
		m.claims, cmd, nav = m.claims.Update(msg)
	case ScreenMyClaims:
		m.myClaims, cmd, nav = m.myClaims.Update(msg)
	case ScreenVehicles:
		m.vehicles, cmd, nav = m.vehicles.Update(msg)
	case ScreenFeedbacks:
		m.feedbacks, cmd, nav = m.feedbacks.Update(msg)
	case ScreenServices:
		m.services, cmd, nav = m.services.Update(msg)
	case ScreenClaimDetail:
		m.claimDetail, cmd, nav = m.claimDetail.Update(msg)
	}

	if nav != nil {
		return m, m.navigateCmd(*nav)
	}
	return m, cmd
}

// typing reports whether the active screen is in a text-entry state, so
// global single-letter keys like q stay typeable.
func (m *Model) typing() bool {
	switch m.screen.Type {
	case ScreenLogin:
		return true
	case ScreenCustomers:
		return m.customers.entering()
	case ScreenParts:
		return m.parts.entering()
	case ScreenClaims:
		return m.claims.entering()
	case ScreenMyClaims:
		return m.myClaims.entering()
	case ScreenFeedbacks:
		return m.feedbacks.entering()
	case ScreenClaimDetail:
		return m.claimDetail.entering()
	}
	return false
}

// backable reports whether esc should pop navigation history rather than be
// handled inside the screen (forms and searches consume esc themselves).
func (m *Model) backable() bool {
	return !m.typing() && len(m.history) > 0
}

func (m *Model) View() string {
	var clearPrefix string
	if m.pendingImageClear != 0 {
		clearPrefix = image.Clear(m.pendingImageClear)
		m.pendingImageClear = 0
	}

	var content string
	switch m.screen.Type {
	case ScreenLogin:
		content = m.login.View(m.width, m.height)
	case ScreenDashboard:
		content = m.dashboard.View(m.width, m.height)
	case ScreenCustomers:
		content = m.customers.View(m.width, m.height)
	case ScreenParts:
		content = m.parts.View(m.width, m.height)
	case ScreenClaims:
		content = m.claims.View(m.width, m.height)
	case ScreenMyClaims:
		content = m.myClaims.View(m.width, m.height)
	case ScreenVehicles:
		content = m.vehicles.View(m.width, m.height)
	case ScreenFeedbacks:
		content = m.feedbacks.View(m.width, m.height)
	case ScreenServices:
		content = m.services.View(m.width, m.height)
	case ScreenClaimDetail:
		content = m.claimDetail.View(m.width, m.height)
	default:
		content = "Unknown screen"
	}

	content = ui.FitHeight(content, m.height)
	return clearPrefix + content
}

// navigateCmd pushes the current screen onto history and activates the
// target.
func (m *Model) navigateCmd(to Screen) tea.Cmd {
	if imgID := m.currentImageID(); imgID != 0 {
		m.pendingImageClear = imgID
	}

	// Login replaces history instead of stacking under it.
	if to.Type == ScreenLogin || m.screen.Type == ScreenLogin {
		m.history = nil
	} else {
		m.history = append(m.history, m.screen)
	}
	m.screen = to

	return m.initScreen(to)
}

func (m *Model) goBack() tea.Cmd {
	if imgID := m.currentImageID(); imgID != 0 {
		m.pendingImageClear = imgID
	}

	m.screen = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.initScreen(m.screen)
}

// initScreen builds a fresh screen model for the target and returns its
// initial command. Screens are rebuilt on every navigation, like page
// mounts: each visit refetches.
func (m *Model) initScreen(s Screen) tea.Cmd {
	switch s.Type {
	case ScreenLogin:
		m.login = NewLoginModel(m.deps)
		return tea.ClearScreen
	case ScreenDashboard:
		m.dashboard = NewDashboardModel(m.deps)
		return tea.ClearScreen
	case ScreenCustomers:
		m.customers = NewCustomersModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.customers.Init())
	case ScreenParts:
		m.parts = NewPartsModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.parts.Init())
	case ScreenClaims:
		m.claims = NewClaimsModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.claims.Init())
	case ScreenMyClaims:
		m.myClaims = NewMyClaimsModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.myClaims.Init())
	case ScreenVehicles:
		m.vehicles = NewVehiclesModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.vehicles.Init())
	case ScreenFeedbacks:
		m.feedbacks = NewFeedbacksModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.feedbacks.Init())
	case ScreenServices:
		m.services = NewServicesModel(m.deps)
		return tea.Batch(tea.ClearScreen, m.services.Init())
	case ScreenClaimDetail:
		m.claimDetail = NewClaimDetailModel(m.deps, s.ClaimID)
		return tea.Batch(tea.ClearScreen, m.claimDetail.Init())
	}
	return nil
}

func (m *Model) currentImageID() uint32 {
	if m.screen.Type == ScreenClaimDetail && m.claimDetail != nil {
		return m.claimDetail.ImageID()
	}
	return 0
}
