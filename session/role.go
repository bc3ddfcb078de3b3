package session

import "strings"

// Role identifies which dashboard and which management screens a logged-in
// user gets.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleSCStaff
	RoleSCTechnician
	RoleEVMStaff
	RoleCustomer
)

// ParseRole accepts both forms the backend emits: the string tags from the
// login response (roleName) and the numeric codes 1-5 (roleId).
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN", "1":
		return RoleAdmin
	case "SC_STAFF", "2":
		return RoleSCStaff
	case "SC_TECHNICIAN", "3":
		return RoleSCTechnician
	case "EVM_STAFF", "4":
		return RoleEVMStaff
	case "CUSTOMER", "5":
		return RoleCustomer
	}
	return RoleUnknown
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleSCStaff:
		return "SC_STAFF"
	case RoleSCTechnician:
		return "SC_TECHNICIAN"
	case RoleEVMStaff:
		return "EVM_STAFF"
	case RoleCustomer:
		return "CUSTOMER"
	}
	return "UNKNOWN"
}

// DashboardPath maps a role to its home route. An unknown or missing role
// falls back to the customer dashboard, matching the backend's web client.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleSCStaff:
		return "/scstaff/dashboard"
	case RoleSCTechnician:
		return "/sctechnician/dashboard"
	case RoleEVMStaff:
		return "/evmstaff/dashboard"
	default:
		return "/customer/dashboard"
	}
}

// Role reads and parses the stored role tag.
func (s *Store) Role() Role {
	return ParseRole(s.Get(KeyRole))
}

// LoggedIn reports whether a token is present. It says nothing about the
// token still being accepted by the backend; a 401 clears it lazily.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}
