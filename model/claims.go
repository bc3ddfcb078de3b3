package model

import (
	"context"
	"fmt"

	"warranty-tui/api"
	"warranty-tui/ui"
)

func claimColumns() []ui.Column {
	return []ui.Column{
		{Title: "ID", Width: 6},
		{Title: "STATUS", Width: 12},
		{Title: "VIN", Width: 18},
		{Title: "FILED", Width: 11},
		{Title: "DESCRIPTION", Width: 30},
	}
}

func claimRow(c api.WarrantyClaim) []string {
	vin := ""
	if c.Vehicle != nil {
		vin = c.Vehicle.VehicleVIN
	}
	return []string{
		fmt.Sprintf("%d", c.WarrantyClaimID),
		c.Status,
		vin,
		shortDate(c.ClaimDate),
		c.Description,
	}
}

func claimID(c api.WarrantyClaim) string {
	return fmt.Sprintf("%d", c.WarrantyClaimID)
}

// shortDate trims an ISO timestamp down to its date part for table cells.
func shortDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// NewClaimsModel is the staff-side claim queue: filterable by status, with
// enter opening the claim detail where status transitions happen.
func NewClaimsModel(deps *Deps) *ResourceModel[api.WarrantyClaim] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.WarrantyClaim]{
		title:      "Warranty claims",
		emptyText:  "No claims in the queue",
		searchable: true,
		searchHint: "Filter by status (SUBMITTED, APPROVED, ...)",
		columns:    claimColumns(),
		row:        claimRow,
		id:         claimID,
		fetch: func(ctx context.Context, page, size int, filter string) (api.Page[api.WarrantyClaim], error) {
			return client.ListClaims(ctx, page, size, filter)
		},
		onSelect: func(c api.WarrantyClaim) *Screen {
			s := ClaimDetailScreen(c.WarrantyClaimID)
			return &s
		},
	})
}
