package model

import (
	"context"
	"strings"

	"warranty-tui/api"
	"warranty-tui/form"
	"warranty-tui/ui"
)

// NewCustomersModel is the staff/admin customer management screen.
// Searching by something that looks like an email address uses the
// search-by-email endpoint, which answers with a singular record.
func NewCustomersModel(deps *Deps) *ResourceModel[api.Customer] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.Customer]{
		title:      "Customers",
		emptyText:  "No customers yet",
		searchable: true,
		searchHint: "Search by name or email...",
		columns: []ui.Column{
			{Title: "NAME", Width: 24},
			{Title: "EMAIL", Width: 28},
			{Title: "PHONE", Width: 14},
		},
		row: func(c api.Customer) []string {
			return []string{c.Name, c.Email, c.Phone}
		},
		id: func(c api.Customer) string { return c.CustomerID },
		fetch: func(ctx context.Context, page, size int, filter string) (api.Page[api.Customer], error) {
			if strings.Contains(filter, "@") {
				return client.CustomerByEmail(ctx, filter)
			}
			return client.ListCustomers(ctx, page, size, filter)
		},
		schema: form.CustomerFields,
		toDraft: func(c api.Customer) form.Draft {
			return form.Draft{
				"name":    c.Name,
				"email":   c.Email,
				"phone":   c.Phone,
				"address": c.Address,
			}
		},
		create: func(ctx context.Context, d form.Draft) (api.Customer, error) {
			return client.CreateCustomer(ctx, customerPayload(d))
		},
		update: func(ctx context.Context, id string, d form.Draft) (api.Customer, error) {
			return client.UpdateCustomer(ctx, id, customerPayload(d))
		},
		remove: client.DeleteCustomer,
	})
}

func customerPayload(d form.Draft) map[string]any {
	return map[string]any{
		"name":    strings.TrimSpace(d["name"]),
		"email":   strings.TrimSpace(d["email"]),
		"phone":   strings.ReplaceAll(d["phone"], " ", ""),
		"address": strings.TrimSpace(d["address"]),
	}
}
