package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/api"
	"warranty-tui/form"
	"warranty-tui/list"
	"warranty-tui/ui"
)

const requestTimeout = 15 * time.Second

// resourceConfig wires one entity's endpoints, table layout and form schema
// into the shared resource screen. Nil create/update/remove hide the
// corresponding action; nil schema makes the screen read-only.
type resourceConfig[T any] struct {
	title     string
	emptyText string
	columns   []ui.Column
	row       func(T) []string
	id        func(T) string

	fetch  func(ctx context.Context, page, size int, filter string) (api.Page[T], error)
	schema func() []form.Field

	toDraft func(T) form.Draft
	create  func(ctx context.Context, d form.Draft) (T, error)
	update  func(ctx context.Context, id string, d form.Draft) (T, error)
	remove  func(ctx context.Context, id string) error

	searchable bool
	searchHint string
	onSelect   func(T) *Screen
}

type listMode int

const (
	modeBrowse listMode = iota
	modeSearch
	modeForm
	modeConfirmDelete
)

// pageMsg carries a completed page fetch back to the screen. The sequence
// number lets the controller discard responses that arrive after a newer
// request was issued.
type pageMsg[T any] struct {
	seq  uint64
	page api.Page[T]
	err  error
}

// mutationMsg carries a completed create/update/delete.
type mutationMsg[T any] struct {
	record    *T
	removedID string
	verb      string
	err       error
}

// ResourceModel is the one list screen every managed entity shares: table +
// pager + search + schema-driven form + delete confirmation, backed by a
// list.Controller.
type ResourceModel[T any] struct {
	deps *Deps
	cfg  resourceConfig[T]

	ctrl   *list.Controller[T]
	table  *ui.Table
	search textinput.Model
	form   *ui.Form
	banner ui.Banner

	mode      listMode
	editingID string
}

func newResourceModel[T any](deps *Deps, cfg resourceConfig[T]) *ResourceModel[T] {
	ti := textinput.New()
	ti.Placeholder = cfg.searchHint
	ti.CharLimit = 100
	ti.Width = 40

	return &ResourceModel[T]{
		deps:   deps,
		cfg:    cfg,
		ctrl:   list.New[T](10),
		table:  ui.NewTable(cfg.columns),
		search: ti,
	}
}

// Init kicks off the first page load.
func (m *ResourceModel[T]) Init() tea.Cmd {
	return m.fetchCmd(0)
}

func (m *ResourceModel[T]) fetchCmd(page int) tea.Cmd {
	seq := m.ctrl.Begin(page)
	size := m.ctrl.PageSize()
	filter := m.ctrl.Filter()
	fetch := m.cfg.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := fetch(ctx, page, size, filter)
		return pageMsg[T]{seq: seq, page: p, err: err}
	}
}

func (m *ResourceModel[T]) submitCmd() tea.Cmd {
	draft := m.form.Draft()
	editingID := m.editingID
	create := m.cfg.create
	update := m.cfg.update
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if editingID == "" {
			rec, err := create(ctx, draft)
			return mutationMsg[T]{record: &rec, verb: "created", err: err}
		}
		rec, err := update(ctx, editingID, draft)
		return mutationMsg[T]{record: &rec, verb: "updated", err: err}
	}
}

func (m *ResourceModel[T]) deleteCmd(id string) tea.Cmd {
	remove := m.cfg.remove
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := remove(ctx, id)
		return mutationMsg[T]{removedID: id, verb: "deleted", err: err}
	}
}

// entering reports whether the screen is consuming raw text or a
// confirmation, so the root model suppresses global single-letter keys.
func (m *ResourceModel[T]) entering() bool {
	return m.mode != modeBrowse
}

func (m *ResourceModel[T]) selected() (T, bool) {
	var zero T
	i := m.table.SelectedRow()
	items := m.ctrl.Items()
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

func (m *ResourceModel[T]) syncRows() {
	items := m.ctrl.Items()
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = m.cfg.row(it)
	}
	m.table.SetRows(rows)
}

func (m *ResourceModel[T]) Update(msg tea.Msg) (*ResourceModel[T], tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case pageMsg[T]:
		if m.ctrl.Complete(msg.seq, msg.page, msg.err) {
			if msg.err != nil {
				m.banner.SetError(msg.err.Error())
			} else {
				m.banner.Clear()
				m.syncRows()
			}
		}
		return m, nil, nil

	case mutationMsg[T]:
		return m.applyMutation(msg), nil, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil, nil
}

func (m *ResourceModel[T]) applyMutation(msg mutationMsg[T]) *ResourceModel[T] {
	if msg.err != nil {
		m.banner.SetError(msg.err.Error())
		return m
	}

	if msg.removedID != "" {
		m.ctrl.PatchLocal(func(t T) bool { return m.cfg.id(t) == msg.removedID }, nil)
	} else if msg.record != nil {
		rec := *msg.record
		m.ctrl.PatchLocal(func(t T) bool { return m.cfg.id(t) == m.cfg.id(rec) }, &rec)
	}
	m.syncRows()
	m.banner.SetSuccess(fmt.Sprintf("%s %s", m.cfg.title, msg.verb))
	m.mode = modeBrowse
	m.form = nil
	m.editingID = ""
	return m
}

func (m *ResourceModel[T]) updateBrowse(msg tea.KeyMsg) (*ResourceModel[T], tea.Cmd, *Screen) {
	page := m.ctrl.Page()

	switch {
	case ui.IsUp(msg):
		m.table.Up()
	case ui.IsDown(msg):
		m.table.Down()

	case ui.IsPrevPage(msg):
		if n, ok := m.ctrl.SetPage(page.PageNumber - 1); ok {
			return m, m.fetchCmd(n), nil
		}
	case ui.IsNextPage(msg):
		if n, ok := m.ctrl.SetPage(page.PageNumber + 1); ok {
			return m, m.fetchCmd(n), nil
		}

	case ui.IsRefresh(msg):
		// Retry the page that was last asked for, which after a failed
		// page flip is the errored target, not the page still on screen.
		return m, m.fetchCmd(m.ctrl.Requested()), nil

	case ui.IsSearch(msg) && m.cfg.searchable:
		m.mode = modeSearch
		m.search.SetValue(m.ctrl.Filter())
		m.search.Focus()

	case ui.IsNew(msg) && m.cfg.create != nil:
		m.mode = modeForm
		m.editingID = ""
		m.form = ui.NewForm(m.cfg.schema(), form.Draft{})

	case ui.IsEdit(msg) && m.cfg.update != nil:
		if rec, ok := m.selected(); ok {
			m.mode = modeForm
			m.editingID = m.cfg.id(rec)
			m.form = ui.NewForm(m.cfg.schema(), m.cfg.toDraft(rec))
		}

	case ui.IsDelete(msg) && m.cfg.remove != nil:
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}

	case ui.IsEnter(msg) && m.cfg.onSelect != nil:
		if rec, ok := m.selected(); ok {
			return m, nil, m.cfg.onSelect(rec)
		}
	}
	return m, nil, nil
}

func (m *ResourceModel[T]) updateSearch(msg tea.KeyMsg) (*ResourceModel[T], tea.Cmd, *Screen) {
	if ui.IsEnter(msg) {
		m.mode = modeBrowse
		m.search.Blur()
		n := m.ctrl.ApplyFilter(strings.TrimSpace(m.search.Value()))
		return m, m.fetchCmd(n), nil
	}
	if ui.IsBack(msg) {
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd, nil
}

func (m *ResourceModel[T]) updateForm(msg tea.KeyMsg) (*ResourceModel[T], tea.Cmd, *Screen) {
	if ui.IsBack(msg) {
		m.mode = modeBrowse
		m.form = nil
		m.editingID = ""
		return m, nil, nil
	}
	if ui.IsEnter(msg) {
		// Validation failures block submission locally; no request is
		// issued until the draft passes.
		if !m.form.Validate() {
			return m, nil, nil
		}
		return m, m.submitCmd(), nil
	}
	return m, m.form.Update(msg), nil
}

func (m *ResourceModel[T]) updateConfirm(msg tea.KeyMsg) (*ResourceModel[T], tea.Cmd, *Screen) {
	switch {
	case msg.String() == "y" || ui.IsEnter(msg):
		m.mode = modeBrowse
		if rec, ok := m.selected(); ok {
			return m, m.deleteCmd(m.cfg.id(rec)), nil
		}
	case ui.IsBack(msg) || msg.String() == "n":
		m.mode = modeBrowse
	}
	return m, nil, nil
}

func (m *ResourceModel[T]) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(ui.HeaderStyle.Render(strings.ToUpper(m.cfg.title)))
	page := m.ctrl.Page()
	b.WriteString(strings.Repeat(" ", 5))
	b.WriteString(ui.CountStyle.Render(fmt.Sprintf("%d", page.TotalElements)))
	b.WriteString("\n  ")
	b.WriteString(ui.DimStyle.Render(strings.Repeat("─", min(width-4, 60))))
	b.WriteString("\n")

	if !m.banner.Empty() {
		b.WriteString("  " + m.banner.View() + "\n")
	}

	switch m.mode {
	case modeSearch:
		b.WriteString("\n  " + ui.BoxStyle.Render(m.search.View()) + "\n")
	case modeForm:
		title := "NEW " + strings.ToUpper(m.cfg.title)
		if m.editingID != "" {
			title = "EDIT " + strings.ToUpper(m.cfg.title)
		}
		b.WriteString("\n  " + ui.HeaderStyle.Render(title) + "\n\n")
		b.WriteString(indent(m.form.View(), 2))
		return ui.FitHeight(b.String(), height)
	case modeConfirmDelete:
		b.WriteString("\n  " + ui.ErrorStyle.Render("Delete selected record? y/n") + "\n\n")
	}

	b.WriteString("\n")
	switch {
	case m.ctrl.Phase() == list.Loading && len(m.ctrl.Items()) == 0:
		b.WriteString("  " + ui.DimStyle.Render("Loading..."))
	case m.ctrl.Phase() == list.Errored && len(m.ctrl.Items()) == 0:
		b.WriteString("  " + ui.ErrorStyle.Render("Could not load data") + "\n")
		b.WriteString("  " + ui.DimStyle.Render("r retry"))
	case m.ctrl.Empty():
		b.WriteString("  " + ui.DimStyle.Render(m.cfg.emptyText))
	default:
		m.table.MaxVisibleRows = max(height-10, 5)
		b.WriteString(m.table.View())
		b.WriteString("\n  ")
		b.WriteString(ui.Pager(page.PageNumber, page.TotalPages, page.TotalElements))
	}

	b.WriteString("\n\n  ")
	b.WriteString(ui.DimStyle.Render(m.keyHints()))
	return ui.FitHeight(b.String(), height)
}

func (m *ResourceModel[T]) keyHints() string {
	hints := []string{"↑↓ navigate"}
	if m.cfg.searchable {
		hints = append(hints, "/ search")
	}
	if m.cfg.create != nil {
		hints = append(hints, "n new")
	}
	if m.cfg.update != nil {
		hints = append(hints, "e edit")
	}
	if m.cfg.remove != nil {
		hints = append(hints, "d delete")
	}
	if m.cfg.onSelect != nil {
		hints = append(hints, "enter open")
	}
	hints = append(hints, "r refresh", "esc back")
	return strings.Join(hints, "   ")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
