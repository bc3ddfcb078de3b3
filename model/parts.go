package model

import (
	"context"
	"fmt"
	"strings"

	"warranty-tui/api"
	"warranty-tui/form"
	"warranty-tui/ui"
)

// NewPartsModel is the parts catalog management screen.
func NewPartsModel(deps *Deps) *ResourceModel[api.Part] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.Part]{
		title:      "Parts",
		emptyText:  "No parts in the catalog",
		searchable: true,
		searchHint: "Search by part number or name...",
		columns: []ui.Column{
			{Title: "NUMBER", Width: 14},
			{Title: "NAME", Width: 26},
			{Title: "PRICE", Width: 10},
			{Title: "STOCK", Width: 7},
			{Title: "WARRANTY", Width: 9},
		},
		row: func(p api.Part) []string {
			return []string{
				p.PartNumber,
				p.PartName,
				fmt.Sprintf("%.2f", p.Price),
				fmt.Sprintf("%d", p.Stock),
				fmt.Sprintf("%d mo", p.WarrantyMonths),
			}
		},
		id: func(p api.Part) string { return p.PartID },
		fetch: func(ctx context.Context, page, size int, filter string) (api.Page[api.Part], error) {
			return client.ListParts(ctx, page, size, filter)
		},
		schema: form.PartFields,
		toDraft: func(p api.Part) form.Draft {
			return form.Draft{
				"partName":       p.PartName,
				"partNumber":     p.PartNumber,
				"manufacturer":   p.Manufacturer,
				"price":          fmt.Sprintf("%g", p.Price),
				"stock":          fmt.Sprintf("%d", p.Stock),
				"minStock":       fmt.Sprintf("%d", p.MinStock),
				"maxStock":       fmt.Sprintf("%d", p.MaxStock),
				"warrantyMonths": fmt.Sprintf("%d", p.WarrantyMonths),
			}
		},
		create: func(ctx context.Context, d form.Draft) (api.Part, error) {
			return client.CreatePart(ctx, partPayload(d))
		},
		update: func(ctx context.Context, id string, d form.Draft) (api.Part, error) {
			return client.UpdatePart(ctx, id, partPayload(d))
		},
		remove: client.DeletePart,
	})
}

// partPayload coerces numeric drafts for submit; empty inputs become 0.
func partPayload(d form.Draft) map[string]any {
	return map[string]any{
		"partName":       strings.TrimSpace(d["partName"]),
		"partNumber":     strings.TrimSpace(d["partNumber"]),
		"manufacturer":   strings.TrimSpace(d["manufacturer"]),
		"price":          form.NumberValue(d, "price"),
		"stock":          form.Int(d, "stock"),
		"minStock":       form.Int(d, "minStock"),
		"maxStock":       form.Int(d, "maxStock"),
		"warrantyMonths": form.Int(d, "warrantyMonths"),
	}
}
