package ui

import "fmt"

// Pager renders the pagination footer for a list screen:
//
//	page 2/7 · 63 records    ←/→ page
//
// Pages are 0-based internally but shown 1-based.
func Pager(pageNumber, totalPages, totalElements int) string {
	if totalPages <= 0 {
		return DimStyle.Render("no records")
	}
	line := fmt.Sprintf("page %d/%d · %d records", pageNumber+1, totalPages, totalElements)
	if totalPages > 1 {
		line += "    ←/→ page"
	}
	return DimStyle.Render(line)
}
