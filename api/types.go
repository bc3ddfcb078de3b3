package api

// Records are exchanged verbatim with the backend; the client holds no
// authoritative state. Related entities arrive denormalized inside the same
// payload when the backend chooses to embed them.

type Customer struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
}

type Part struct {
	PartID         string  `json:"partId"`
	PartName       string  `json:"partName"`
	PartNumber     string  `json:"partNumber"`
	Manufacturer   string  `json:"manufacturer,omitempty"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	MinStock       int     `json:"minStock"`
	MaxStock       int     `json:"maxStock"`
	WarrantyMonths int     `json:"warrantyMonths,omitempty"`
}

type Vehicle struct {
	VehicleID     int64     `json:"vehicleId"`
	VehicleName   string    `json:"vehicleName"`
	VehicleModel  string    `json:"vehicleModel"`
	VehicleYear   int       `json:"vehicleYear"`
	VehicleVIN    string    `json:"vehicleVin"`
	PurchaseDate  string    `json:"purchaseDate,omitempty"`
	WarrantyStart string    `json:"warrantyStartDate,omitempty"`
	WarrantyEnd   string    `json:"warrantyEndDate,omitempty"`
	Mileage       int       `json:"mileage,omitempty"`
	Customer      *Customer `json:"customer,omitempty"`
}

type WarrantyClaim struct {
	WarrantyClaimID int64    `json:"warrantyClaimId"`
	ClaimDate       string   `json:"claimDate,omitempty"`
	Status          string   `json:"status"`
	ResolutionDate  string   `json:"resolutionDate,omitempty"`
	Description     string   `json:"description"`
	PhotoPath       string   `json:"photoPath,omitempty"`
	Vehicle         *Vehicle `json:"vehicle,omitempty"`
	Part            *Part    `json:"part,omitempty"`
}

// Claim status values as the backend reports them.
const (
	ClaimSubmitted  = "SUBMITTED"
	ClaimInProgress = "IN_PROGRESS"
	ClaimApproved   = "APPROVED"
	ClaimRejected   = "REJECTED"
	ClaimCompleted  = "COMPLETED"
)

type Feedback struct {
	FeedbackID      int64  `json:"feedbackId"`
	WarrantyClaimID int64  `json:"warrantyClaimId"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

type ServiceHistory struct {
	ServiceHistoryID int64    `json:"serviceHistoryId"`
	ServiceDate      string   `json:"serviceDate"`
	ServiceType      string   `json:"serviceType"`
	Description      string   `json:"description,omitempty"`
	Vehicle          *Vehicle `json:"vehicle,omitempty"`
	Part             *Part    `json:"part,omitempty"`
}

// LoginResult is the auth response; RoleName may instead arrive as a numeric
// roleId depending on the endpoint, so both are kept.
type LoginResult struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	RoleName   string `json:"roleName,omitempty"`
	RoleID     int    `json:"roleId,omitempty"`
	UserID     string `json:"userId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
}
