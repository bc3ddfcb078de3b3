package mockapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"warranty-tui/api"
)

// seed fills the stores with enough demo data to exercise pagination.
func (s *Server) seed() {
	names := []string{
		"Nguyen Van An", "Tran Thi Binh", "Le Hoang Cuong", "Pham Minh Duc",
		"Hoang Thi Em", "Vu Quang Phuc", "Dang Thu Giang", "Bui Van Hai",
		"Do Thi Lan", "Ngo Duc Manh", "Ly Thanh Nam", "Mai Thi Oanh",
	}
	for i, name := range names {
		s.customers = append(s.customers, api.Customer{
			CustomerID: uuid.NewString(),
			Name:       name,
			Email:      fmt.Sprintf("customer%d@example.com", i+1),
			Phone:      fmt.Sprintf("09%08d", 10000000+i),
			Address:    fmt.Sprintf("%d Tran Hung Dao, Hanoi", 10+i),
		})
	}

	parts := []struct {
		name, number, maker string
		price               float64
		warranty            int
	}{
		{"Battery Pack 60kWh", "BP-6000", "VinES", 8500, 96},
		{"Drive Motor Front", "DM-F200", "Bosch", 2300, 60},
		{"Onboard Charger 11kW", "OC-1100", "Delta", 950, 36},
		{"Brake Caliper", "BC-0042", "Brembo", 310, 24},
		{"Heat Pump Module", "HP-0310", "Denso", 1150, 48},
		{"Infotainment Unit", "IU-0977", "LG", 780, 24},
		{"12V Auxiliary Battery", "AB-0012", "Varta", 140, 18},
		{"Charging Port Assembly", "CP-0200", "Phoenix", 420, 36},
		{"Cabin Air Filter", "CF-0005", "Mann", 25, 6},
		{"Suspension Strut", "SS-0081", "KYB", 260, 24},
		{"BMS Controller", "BM-0550", "VinES", 670, 60},
		{"Rear Light Cluster", "RL-0033", "Hella", 190, 12},
	}
	for i, p := range parts {
		s.parts = append(s.parts, api.Part{
			PartID:         uuid.NewString(),
			PartName:       p.name,
			PartNumber:     p.number,
			Manufacturer:   p.maker,
			Price:          p.price,
			Stock:          20 + i*3,
			MinStock:       5,
			MaxStock:       80,
			WarrantyMonths: p.warranty,
		})
	}

	now := time.Now()
	vehicles := []struct {
		name, model, vin string
		year             int
	}{
		{"VF 8 Plus", "VF8", "RLVVF8EL5PC012345", 2023},
		{"VF 9 Eco", "VF9", "RLVVF9EL2PC067890", 2024},
		{"VF e34", "E34", "RLVE34EL8NC024680", 2022},
	}
	for i, v := range vehicles {
		s.vehicles = append(s.vehicles, api.Vehicle{
			VehicleID:     int64(i + 1),
			VehicleName:   v.name,
			VehicleModel:  v.model,
			VehicleYear:   v.year,
			VehicleVIN:    v.vin,
			PurchaseDate:  now.AddDate(0, -14-i*6, 0).Format(time.RFC3339),
			WarrantyStart: now.AddDate(0, -14-i*6, 0).Format(time.RFC3339),
			WarrantyEnd:   now.AddDate(0, 82-i*6, 0).Format(time.RFC3339),
			Mileage:       12000 + i*9000,
			Customer:      &s.customers[i],
		})
	}

	statuses := []string{
		api.ClaimSubmitted, api.ClaimInProgress, api.ClaimApproved,
		api.ClaimRejected, api.ClaimCompleted,
	}
	descriptions := []string{
		"Battery loses charge overnight",
		"Charging stops at 80 percent",
		"Grinding noise from front motor under load",
		"Infotainment reboots while driving",
		"Heat pump not heating below 5C",
		"Rattle from rear suspension on rough roads",
		"Charging port door will not latch",
		"12V battery warning after software update",
		"Brake pedal feels spongy after service",
		"Range estimate dropped 15 percent",
		"Rear lights flicker at night",
		"BMS fault code on dashboard",
	}
	for i, d := range descriptions {
		v := s.vehicles[i%len(s.vehicles)]
		p := s.parts[i%len(s.parts)]
		claim := api.WarrantyClaim{
			WarrantyClaimID: s.nextClaimID,
			ClaimDate:       now.AddDate(0, 0, -2*i-1).Format(time.RFC3339),
			Status:          statuses[i%len(statuses)],
			Description:     d,
			Vehicle:         &v,
			Part:            &p,
		}
		if claim.Status == api.ClaimCompleted || claim.Status == api.ClaimRejected {
			claim.ResolutionDate = now.AddDate(0, 0, -i).Format(time.RFC3339)
		}
		s.nextClaimID++
		s.claims = append(s.claims, claim)
	}

	comments := []string{
		"Fixed quickly, great service",
		"Took longer than promised",
		"Staff kept me informed the whole time",
		"Part replaced under warranty without hassle",
	}
	for i, c := range comments {
		s.feedbacks = append(s.feedbacks, api.Feedback{
			FeedbackID:      s.nextFbID,
			WarrantyClaimID: s.claims[i].WarrantyClaimID,
			Rating:          5 - i%3,
			Comment:         c,
			CreatedAt:       now.AddDate(0, 0, -i).Format(time.RFC3339),
		})
		s.nextFbID++
	}

	types := []string{"MAINTENANCE", "REPAIR", "RECALL", "INSPECTION"}
	for i := 0; i < 6; i++ {
		v := s.vehicles[i%len(s.vehicles)]
		s.services = append(s.services, api.ServiceHistory{
			ServiceHistoryID: int64(i + 1),
			ServiceDate:      now.AddDate(0, -i, 0).Format(time.RFC3339),
			ServiceType:      types[i%len(types)],
			Description:      fmt.Sprintf("Scheduled %s at service center", types[i%len(types)]),
			Vehicle:          &v,
		})
	}
}
