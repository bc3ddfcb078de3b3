package model

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"warranty-tui/api"
	"warranty-tui/form"
	"warranty-tui/image"
	"warranty-tui/session"
	"warranty-tui/ui"
)

// ClaimDetailModel shows one warranty claim: its fields, the attached
// photo when the terminal can draw it, and the feedback left on it. Staff
// roles advance the claim status from here; customers leave feedback.
type ClaimDetailModel struct {
	deps    *Deps
	claimID int64
	role    session.Role

	claim     *api.WarrantyClaim
	feedbacks []api.Feedback
	img       *image.KittyImage
	imgError  string

	form   *ui.Form // non-nil while composing feedback
	banner ui.Banner
}

type claimLoadedMsg struct {
	claim api.WarrantyClaim
	err   error
}

type claimFeedbackMsg struct {
	items []api.Feedback
}

type statusChangedMsg struct {
	claim api.WarrantyClaim
	err   error
}

type feedbackSentMsg struct {
	feedback api.Feedback
	err      error
}

func NewClaimDetailModel(deps *Deps, claimID int64) *ClaimDetailModel {
	return &ClaimDetailModel{
		deps:    deps,
		claimID: claimID,
		role:    deps.Session.Role(),
	}
}

func (m *ClaimDetailModel) Init() tea.Cmd {
	client := m.deps.API
	id := m.claimID
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		claim, err := client.GetClaim(ctx, id)
		return claimLoadedMsg{claim: claim, err: err}
	}
	loadFeedback := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		// Feedback is decoration on this screen; a failed fetch just
		// leaves the section empty.
		page, err := client.FeedbacksByClaim(ctx, id)
		if err != nil {
			return claimFeedbackMsg{}
		}
		return claimFeedbackMsg{items: page.Items}
	}
	return tea.Batch(load, loadFeedback)
}

func (m *ClaimDetailModel) entering() bool {
	return m.form != nil
}

func (m *ClaimDetailModel) Update(msg tea.Msg) (*ClaimDetailModel, tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case claimLoadedMsg:
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		claim := msg.claim
		m.claim = &claim
		m.loadPhoto()
		return m, nil, nil

	case claimFeedbackMsg:
		m.feedbacks = msg.items
		return m, nil, nil

	case statusChangedMsg:
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		claim := msg.claim
		m.claim = &claim
		m.banner.SetSuccess("Status updated to " + claim.Status)
		return m, nil, nil

	case feedbackSentMsg:
		if msg.err != nil {
			m.banner.SetError(msg.err.Error())
			return m, nil, nil
		}
		m.form = nil
		m.feedbacks = append([]api.Feedback{msg.feedback}, m.feedbacks...)
		m.banner.SetSuccess("Thanks for your feedback")
		return m, nil, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateFeedbackForm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil, nil
}

func (m *ClaimDetailModel) updateKeys(msg tea.KeyMsg) (*ClaimDetailModel, tea.Cmd, *Screen) {
	if m.claim == nil {
		return m, nil, nil
	}

	staff := m.role == session.RoleAdmin || m.role == session.RoleSCStaff ||
		m.role == session.RoleSCTechnician || m.role == session.RoleEVMStaff

	switch {
	case staff && msg.String() == "a":
		return m, m.statusCmd(api.ClaimApproved), nil
	case staff && msg.String() == "x":
		return m, m.statusCmd(api.ClaimRejected), nil
	case staff && msg.String() == "p":
		return m, m.statusCmd(api.ClaimInProgress), nil
	case staff && msg.String() == "c":
		return m, m.statusCmd(api.ClaimCompleted), nil

	case !staff && ui.IsFeedback(msg):
		m.form = ui.NewForm(form.FeedbackFields(), form.Draft{})
	}
	return m, nil, nil
}

func (m *ClaimDetailModel) updateFeedbackForm(msg tea.KeyMsg) (*ClaimDetailModel, tea.Cmd, *Screen) {
	if ui.IsBack(msg) {
		m.form = nil
		return m, nil, nil
	}
	if ui.IsEnter(msg) {
		if !m.form.Validate() {
			return m, nil, nil
		}
		draft := m.form.Draft()
		client := m.deps.API
		id := m.claimID
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			fb, err := client.CreateFeedback(ctx, map[string]any{
				"warrantyClaimId": id,
				"rating":          form.Int(draft, "rating"),
				"comment":         strings.TrimSpace(draft["comment"]),
			})
			return feedbackSentMsg{feedback: fb, err: err}
		}, nil
	}
	return m, m.form.Update(msg), nil
}

func (m *ClaimDetailModel) statusCmd(status string) tea.Cmd {
	client := m.deps.API
	id := m.claimID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		claim, err := client.UpdateClaimStatus(ctx, id, status)
		return statusChangedMsg{claim: claim, err: err}
	}
}

func (m *ClaimDetailModel) loadPhoto() {
	m.img = nil
	m.imgError = ""
	if m.claim.PhotoPath == "" || !image.Supported() {
		return
	}
	path := m.claim.PhotoPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.deps.DataPath, path)
	}
	if img, err := image.LoadAndScale(path, 60, 24); err == nil {
		m.img = img
	} else {
		m.imgError = err.Error()
	}
}

func (m *ClaimDetailModel) ImageID() uint32 {
	if m.img != nil {
		return m.img.ID()
	}
	return 0
}

func (m *ClaimDetailModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	splitHeight := height - 5
	if splitHeight < 10 {
		splitHeight = 10
	}

	var result strings.Builder
	result.WriteString("\n\n")

	left := m.renderPhoto(splitHeight)
	right := m.renderDetail(splitHeight)
	split := ui.RenderSplitPane(left, right, width-2, splitHeight)

	if m.img != nil {
		result.WriteString("\x1b7")
		result.WriteString("  ")
		result.WriteString("\x1b[1B")
		result.WriteString(m.img.Render())
		result.WriteString("\x1b8")
	}

	result.WriteString(split)
	return result.String()
}

func (m *ClaimDetailModel) renderPhoto(height int) string {
	var lines []string

	if m.img != nil {
		lines = append(lines, ui.DimStyle.Render("Attached photo"))
		for i := 0; i < m.img.CellHeight(); i++ {
			lines = append(lines, "")
		}
	} else if m.imgError != "" {
		lines = append(lines, ui.ErrorStyle.Render(m.imgError))
	} else {
		lines = append(lines, ui.DimStyle.Render("No photo attached"))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *ClaimDetailModel) renderDetail(height int) string {
	var b strings.Builder

	if m.claim == nil {
		if !m.banner.Empty() {
			b.WriteString(m.banner.View())
		} else {
			b.WriteString(ui.DimStyle.Render("Loading claim..."))
		}
		return b.String()
	}

	c := m.claim
	b.WriteString(ui.HeaderStyle.Render(fmt.Sprintf("CLAIM #%d", c.WarrantyClaimID)))
	b.WriteString("  ")
	if style, ok := ui.StatusStyle[c.Status]; ok {
		b.WriteString(style.Render(c.Status))
	} else {
		b.WriteString(c.Status)
	}
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n")

	if !m.banner.Empty() {
		b.WriteString(m.banner.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(ui.HeaderStyle.Render("LEAVE FEEDBACK"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
		return b.String()
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(ui.FieldLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Filed", shortDate(c.ClaimDate))
	row("Resolved", shortDate(c.ResolutionDate))
	if c.Vehicle != nil {
		row("Vehicle", fmt.Sprintf("%s (%s)", c.Vehicle.VehicleName, c.Vehicle.VehicleVIN))
	}
	if c.Part != nil {
		row("Part", fmt.Sprintf("%s %s", c.Part.PartNumber, c.Part.PartName))
	}
	row("Description", c.Description)

	if len(m.feedbacks) > 0 {
		b.WriteString("\n")
		b.WriteString(ui.HeaderStyle.Render("FEEDBACK"))
		b.WriteString("\n")
		for _, f := range m.feedbacks {
			b.WriteString(fmt.Sprintf("%s %s\n", stars(f.Rating), ui.DimStyle.Render(f.Comment)))
		}
	}

	b.WriteString("\n")
	staff := m.role != session.RoleCustomer && m.role != session.RoleUnknown
	if staff {
		b.WriteString(ui.DimStyle.Render("a approve   x reject   p in progress   c complete   esc back"))
	} else {
		b.WriteString(ui.DimStyle.Render("f leave feedback   esc back"))
	}
	return b.String()
}
