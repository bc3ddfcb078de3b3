package model

import (
	"context"

	"warranty-tui/api"
	"warranty-tui/ui"
)

// NewServicesModel lists the signed-in customer's service history.
func NewServicesModel(deps *Deps) *ResourceModel[api.ServiceHistory] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.ServiceHistory]{
		title:     "Service history",
		emptyText: "No service visits on record",
		columns: []ui.Column{
			{Title: "DATE", Width: 11},
			{Title: "TYPE", Width: 16},
			{Title: "VEHICLE", Width: 18},
			{Title: "DESCRIPTION", Width: 32},
		},
		row: func(s api.ServiceHistory) []string {
			vehicle := ""
			if s.Vehicle != nil {
				vehicle = s.Vehicle.VehicleName
			}
			return []string{shortDate(s.ServiceDate), s.ServiceType, vehicle, s.Description}
		},
		id: func(s api.ServiceHistory) string { return idString(s.ServiceHistoryID) },
		fetch: func(ctx context.Context, _, _ int, _ string) (api.Page[api.ServiceHistory], error) {
			return client.MyServices(ctx)
		},
	})
}
