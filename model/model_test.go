package model

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/api"
	"warranty-tui/session"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()
	dir := t.TempDir()
	sess, err := session.Open(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	return &Deps{
		API:      api.New("http://127.0.0.1:1", sess),
		Session:  sess,
		DataPath: dir,
	}
}

func loggedInDeps(t *testing.T, role string) *Deps {
	t.Helper()
	deps := testDeps(t)
	deps.Session.Set(session.KeyToken, "tok")
	deps.Session.Set(session.KeyUsername, "someone")
	deps.Session.Set(session.KeyRole, role)
	return deps
}

func TestStartScreenFollowsSession(t *testing.T) {
	if m := New(testDeps(t)); m.screen.Type != ScreenLogin {
		t.Errorf("logged-out start screen = %v, want login", m.screen.Type)
	}
	if m := New(loggedInDeps(t, "ADMIN")); m.screen.Type != ScreenDashboard {
		t.Errorf("logged-in start screen = %v, want dashboard", m.screen.Type)
	}
}

func TestSessionClearRedirectsToLogin(t *testing.T) {
	m := New(loggedInDeps(t, "ADMIN"))
	m.navigateCmd(CustomersScreen())
	if m.screen.Type != ScreenCustomers || len(m.history) == 0 {
		t.Fatalf("setup: screen=%v history=%d", m.screen.Type, len(m.history))
	}

	// Logout path: Clear() surfaces as a Cleared event.
	m.Update(sessionMsg(session.Event{Cleared: true}))
	if m.screen.Type != ScreenLogin {
		t.Errorf("screen after clear = %v, want login", m.screen.Type)
	}
	if len(m.history) != 0 {
		t.Errorf("history after clear = %d entries, want none", len(m.history))
	}
}

func TestTokenExpiryRedirectsToLogin(t *testing.T) {
	m := New(loggedInDeps(t, "SC_STAFF"))
	m.navigateCmd(ClaimsScreen())

	// A 401 deletes only the token key; the redirect must still fire.
	m.Update(sessionMsg(session.Event{Key: session.KeyToken, Value: ""}))
	if m.screen.Type != ScreenLogin {
		t.Errorf("screen after token expiry = %v, want login", m.screen.Type)
	}
	if len(m.history) != 0 {
		t.Errorf("history after token expiry = %d entries, want none", len(m.history))
	}
}

func TestUnrelatedSessionEventsDoNotRedirect(t *testing.T) {
	m := New(loggedInDeps(t, "ADMIN"))
	m.navigateCmd(PartsScreen())

	m.Update(sessionMsg(session.Event{Key: session.KeyUsername, Value: "renamed"}))
	if m.screen.Type != ScreenParts {
		t.Errorf("screen after unrelated event = %v, want parts", m.screen.Type)
	}
}

func TestEscapePopsHistory(t *testing.T) {
	m := New(loggedInDeps(t, "ADMIN"))
	m.navigateCmd(CustomersScreen())

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen.Type != ScreenDashboard {
		t.Errorf("screen after esc = %v, want dashboard", m.screen.Type)
	}
	if len(m.history) != 0 {
		t.Errorf("history after esc = %d entries", len(m.history))
	}
}

func TestLoginScreenModes(t *testing.T) {
	deps := testDeps(t)
	login := NewLoginModel(deps)

	login, _, _ = login.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if login.mode != modeRegister {
		t.Fatalf("mode after ctrl+n = %v, want register", login.mode)
	}

	// A completed registration drops back to sign-in with a confirmation.
	login, _, _ = login.Update(registerDoneMsg{})
	if login.mode != modeSignIn {
		t.Errorf("mode after registration = %v, want sign-in", login.mode)
	}
	if login.banner.Empty() {
		t.Error("no confirmation banner after registration")
	}

	login, _, _ = login.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	if login.mode != modeForgot {
		t.Fatalf("mode after ctrl+f = %v, want forgot", login.mode)
	}

	// The forgot flow hands off to the reset-token form.
	login, _, _ = login.Update(forgotDoneMsg{})
	if login.mode != modeReset {
		t.Errorf("mode after forgot = %v, want reset", login.mode)
	}

	login, _, _ = login.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if login.mode != modeSignIn {
		t.Errorf("mode after esc = %v, want sign-in", login.mode)
	}
}
