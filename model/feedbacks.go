package model

import (
	"context"
	"fmt"

	"warranty-tui/api"
	"warranty-tui/ui"
)

func idString(id int64) string {
	return fmt.Sprintf("%d", id)
}

// NewFeedbacksModel is the staff-side feedback review screen.
func NewFeedbacksModel(deps *Deps) *ResourceModel[api.Feedback] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.Feedback]{
		title:     "Feedback",
		emptyText: "No feedback submitted yet",
		columns: []ui.Column{
			{Title: "CLAIM", Width: 7},
			{Title: "RATING", Width: 7},
			{Title: "COMMENT", Width: 40},
			{Title: "WHEN", Width: 11},
		},
		row: func(f api.Feedback) []string {
			return []string{
				idString(f.WarrantyClaimID),
				stars(f.Rating),
				f.Comment,
				shortDate(f.CreatedAt),
			}
		},
		id: func(f api.Feedback) string { return idString(f.FeedbackID) },
		fetch: func(ctx context.Context, page, size int, _ string) (api.Page[api.Feedback], error) {
			return client.ListFeedbacks(ctx, page, size)
		},
		remove: func(ctx context.Context, id string) error {
			var n int64
			fmt.Sscanf(id, "%d", &n)
			return client.DeleteFeedback(ctx, n)
		},
	})
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := ""
	for i := 0; i < rating; i++ {
		out += "★"
	}
	for i := rating; i < 5; i++ {
		out += "☆"
	}
	return out
}
