package model

// ScreenType enumerates every navigable screen.
type ScreenType int

const (
	ScreenLogin ScreenType = iota
	ScreenDashboard
	ScreenCustomers
	ScreenParts
	ScreenClaims
	ScreenMyClaims
	ScreenVehicles
	ScreenFeedbacks
	ScreenServices
	ScreenClaimDetail
)

// Screen is a navigation target plus its parameters. Instances are pushed
// onto the history stack, so going back re-creates the screen model from
// the same parameters.
type Screen struct {
	Type    ScreenType
	ClaimID int64
}

func LoginScreen() Screen     { return Screen{Type: ScreenLogin} }
func DashboardScreen() Screen { return Screen{Type: ScreenDashboard} }
func CustomersScreen() Screen { return Screen{Type: ScreenCustomers} }
func PartsScreen() Screen     { return Screen{Type: ScreenParts} }
func ClaimsScreen() Screen    { return Screen{Type: ScreenClaims} }
func MyClaimsScreen() Screen  { return Screen{Type: ScreenMyClaims} }
func VehiclesScreen() Screen  { return Screen{Type: ScreenVehicles} }
func FeedbacksScreen() Screen { return Screen{Type: ScreenFeedbacks} }
func ServicesScreen() Screen  { return Screen{Type: ScreenServices} }

func ClaimDetailScreen(claimID int64) Screen {
	return Screen{Type: ScreenClaimDetail, ClaimID: claimID}
}
