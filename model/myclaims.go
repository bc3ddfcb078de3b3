package model

import (
	"context"
	"strings"

	"warranty-tui/api"
	"warranty-tui/form"
)

// NewMyClaimsModel is the customer's claim screen: their filed claims plus
// the form to file a new one.
func NewMyClaimsModel(deps *Deps) *ResourceModel[api.WarrantyClaim] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.WarrantyClaim]{
		title:     "My claims",
		emptyText: "You have not filed any claims",
		columns:   claimColumns(),
		row:       claimRow,
		id:        claimID,
		fetch: func(ctx context.Context, page, size int, _ string) (api.Page[api.WarrantyClaim], error) {
			return client.MyClaims(ctx, page, size)
		},
		schema: form.ClaimFields,
		create: func(ctx context.Context, d form.Draft) (api.WarrantyClaim, error) {
			return client.CreateClaim(ctx, map[string]any{
				"vehicleVin":  strings.ToUpper(strings.TrimSpace(d["vehicleVin"])),
				"description": strings.TrimSpace(d["description"]),
			})
		},
		onSelect: func(c api.WarrantyClaim) *Screen {
			s := ClaimDetailScreen(c.WarrantyClaimID)
			return &s
		},
	})
}
