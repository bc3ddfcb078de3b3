package ui

import tea "github.com/charmbracelet/bubbletea"

func IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "q" || msg.Type == tea.KeyCtrlC
}

func IsBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEscape
}

func IsUp(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyUp || msg.String() == "k"
}

func IsDown(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyDown || msg.String() == "j"
}

func IsEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

func IsSearch(msg tea.KeyMsg) bool {
	return msg.String() == "/"
}

func IsPrevPage(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyLeft || msg.String() == "h"
}

func IsNextPage(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRight || msg.String() == "l"
}

func IsNew(msg tea.KeyMsg) bool {
	return msg.String() == "n"
}

func IsEdit(msg tea.KeyMsg) bool {
	return msg.String() == "e"
}

func IsDelete(msg tea.KeyMsg) bool {
	return msg.String() == "d"
}

func IsRefresh(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}

func IsFeedback(msg tea.KeyMsg) bool {
	return msg.String() == "f"
}

func IsNextField(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab || msg.Type == tea.KeyDown
}

func IsPrevField(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp
}
