package ui

// Banner is the transient status line shown under a screen title: an error
// from the gateway, or a short-lived success confirmation after a mutation.
type Banner struct {
	text  string
	isErr bool
}

func (b *Banner) SetError(text string) {
	b.text = text
	b.isErr = true
}

func (b *Banner) SetSuccess(text string) {
	b.text = text
	b.isErr = false
}

func (b *Banner) Clear() {
	b.text = ""
}

func (b *Banner) Empty() bool {
	return b.text == ""
}

func (b *Banner) View() string {
	if b.text == "" {
		return ""
	}
	if b.isErr {
		return ErrorStyle.Render("✗ " + b.text)
	}
	return SuccessStyle.Render("✓ " + b.text)
}
