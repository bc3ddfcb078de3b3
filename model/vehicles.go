package model

import (
	"context"
	"fmt"

	"warranty-tui/api"
	"warranty-tui/ui"
)

// NewVehiclesModel lists the signed-in customer's registered vehicles.
// The endpoint answers with a bare array, which the gateway folds into a
// single unpaginated page.
func NewVehiclesModel(deps *Deps) *ResourceModel[api.Vehicle] {
	client := deps.API
	return newResourceModel(deps, resourceConfig[api.Vehicle]{
		title:     "My vehicles",
		emptyText: "No vehicles registered to your account",
		columns: []ui.Column{
			{Title: "NAME", Width: 18},
			{Title: "MODEL", Width: 16},
			{Title: "YEAR", Width: 6},
			{Title: "VIN", Width: 19},
			{Title: "WARRANTY UNTIL", Width: 14},
		},
		row: func(v api.Vehicle) []string {
			return []string{
				v.VehicleName,
				v.VehicleModel,
				fmt.Sprintf("%d", v.VehicleYear),
				v.VehicleVIN,
				shortDate(v.WarrantyEnd),
			}
		},
		id: func(v api.Vehicle) string { return fmt.Sprintf("%d", v.VehicleID) },
		fetch: func(ctx context.Context, _, _ int, _ string) (api.Page[api.Vehicle], error) {
			return client.MyVehicles(ctx)
		},
	})
}
