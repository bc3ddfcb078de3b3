package model

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/api"
	"warranty-tui/form"
	"warranty-tui/session"
	"warranty-tui/ui"
)

type loginMode int

const (
	modeSignIn loginMode = iota
	modeRegister
	modeForgot
	modeReset
)

// LoginModel is the entry screen. Besides signing in it carries the account
// flows the backend exposes: registration, and the forgot/reset password
// pair. A successful login persists the session keys and routes to the
// dashboard the role maps to.
type LoginModel struct {
	deps    *Deps
	mode    loginMode
	form    *ui.Form
	banner  ui.Banner
	waiting bool
}

type loginResultMsg struct {
	result api.LoginResult
	err    error
}

type registerDoneMsg struct {
	err error
}

type forgotDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

func NewLoginModel(deps *Deps) *LoginModel {
	return &LoginModel{
		deps: deps,
		form: ui.NewForm(form.LoginFields(), form.Draft{}),
	}
}

// setMode swaps in the mode's form and drops any stale banner.
func (m *LoginModel) setMode(mode loginMode) {
	m.mode = mode
	m.banner.Clear()
	switch mode {
	case modeRegister:
		m.form = ui.NewForm(form.RegisterFields(), form.Draft{})
	case modeForgot:
		m.form = ui.NewForm(form.ForgotPasswordFields(), form.Draft{})
	case modeReset:
		m.form = ui.NewForm(form.ResetPasswordFields(), form.Draft{})
	default:
		m.form = ui.NewForm(form.LoginFields(), form.Draft{})
	}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		m.storeSession(msg.result)
		s := DashboardScreen()
		return m, nil, &s

	case registerDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		m.setMode(modeSignIn)
		m.banner.SetSuccess("Account created, sign in to continue")
		return m, nil, nil

	case forgotDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		// The token arrives by email; the reset form takes it from there.
		m.setMode(modeReset)
		m.banner.SetSuccess("Check your email for a reset token")
		return m, nil, nil

	case resetDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		m.setMode(modeSignIn)
		m.banner.SetSuccess("Password updated, sign in with the new one")
		return m, nil, nil

	case tea.KeyMsg:
		if m.waiting {
			return m, nil, nil
		}
		switch {
		case msg.String() == "ctrl+n" && m.mode == modeSignIn:
			m.setMode(modeRegister)
			return m, nil, nil
		case msg.String() == "ctrl+f" && m.mode == modeSignIn:
			m.setMode(modeForgot)
			return m, nil, nil
		case ui.IsBack(msg) && m.mode != modeSignIn:
			m.setMode(modeSignIn)
			return m, nil, nil
		case ui.IsEnter(msg):
			if !m.form.Validate() {
				return m, nil, nil
			}
			m.waiting = true
			m.banner.Clear()
			return m, m.submitCmd(), nil
		}
		return m, m.form.Update(msg), nil
	}
	return m, nil, nil
}

func (m *LoginModel) submitCmd() tea.Cmd {
	draft := m.form.Draft()
	client := m.deps.API

	switch m.mode {
	case modeRegister:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			err := client.Register(ctx, map[string]string{
				"username": strings.TrimSpace(draft["username"]),
				"password": draft["password"],
				"name":     strings.TrimSpace(draft["name"]),
				"email":    strings.TrimSpace(draft["email"]),
				"phone":    strings.ReplaceAll(draft["phone"], " ", ""),
			})
			return registerDoneMsg{err: err}
		}

	case modeForgot:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			err := client.ForgotPassword(ctx, strings.TrimSpace(draft["email"]))
			return forgotDoneMsg{err: err}
		}

	case modeReset:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			err := client.ResetPassword(ctx, strings.TrimSpace(draft["token"]), draft["newPassword"])
			return resetDoneMsg{err: err}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := client.Login(ctx, draft["username"], draft["password"])
		return loginResultMsg{result: res, err: err}
	}
}

func (m *LoginModel) storeSession(res api.LoginResult) {
	sess := m.deps.Session
	sess.Set(session.KeyToken, res.Token)
	sess.Set(session.KeyUsername, res.Username)

	role := res.RoleName
	if role == "" && res.RoleID != 0 {
		role = fmt.Sprintf("%d", res.RoleID)
	}
	sess.Set(session.KeyRole, role)

	if res.UserID != "" {
		sess.Set(session.KeyUserID, res.UserID)
	}
	if res.CustomerID != "" {
		sess.Set(session.KeyCustomerID, res.CustomerID)
	}
}

func (m *LoginModel) title() (string, string) {
	switch m.mode {
	case modeRegister:
		return "CREATE ACCOUNT", "Register to file warranty claims"
	case modeForgot:
		return "FORGOT PASSWORD", "We will email you a reset token"
	case modeReset:
		return "RESET PASSWORD", "Enter the token from your email"
	}
	return "EV WARRANTY SERVICE", "Sign in to continue"
}

func (m *LoginModel) hints() string {
	if m.mode == modeSignIn {
		return "enter sign in   ctrl+n register   ctrl+f forgot password"
	}
	return "enter submit   esc back to sign in"
}

func (m *LoginModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	header, sub := m.title()

	var b strings.Builder
	b.WriteString("\n\n  ")
	b.WriteString(ui.HeaderStyle.Render(header))
	b.WriteString("\n  ")
	b.WriteString(ui.DimStyle.Render(sub))
	b.WriteString("\n\n")

	if !m.banner.Empty() {
		b.WriteString("  " + m.banner.View() + "\n\n")
	}

	b.WriteString(indent(m.form.View(), 2))
	if m.waiting {
		b.WriteString("\n  " + ui.DimStyle.Render("Working..."))
	}
	b.WriteString("\n\n  ")
	b.WriteString(ui.DimStyle.Render(m.hints()))

	return ui.FitHeight(b.String(), height)
}
