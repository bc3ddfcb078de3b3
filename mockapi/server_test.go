package mockapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"warranty-tui/api"
	"warranty-tui/session"
)

// client builds a real gateway pointed at an in-process mock server, so
// these tests double as integration coverage for the api package.
func client(t *testing.T) (*api.Client, *session.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(NewServer().Router())
	t.Cleanup(srv.Close)

	sess, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	return api.New(srv.URL, sess), sess, srv
}

func login(t *testing.T, c *api.Client, sess *session.Store, user string) {
	t.Helper()
	res, err := c.Login(context.Background(), user, user)
	if err != nil {
		t.Fatalf("login %s: %v", user, err)
	}
	sess.Set(session.KeyToken, res.Token)
	sess.Set(session.KeyRole, res.RoleName)
}

func TestRegisterThenLogin(t *testing.T) {
	c, _, _ := client(t)

	err := c.Register(context.Background(), map[string]string{
		"username": "newuser",
		"password": "secret1",
		"name":     "New User",
		"email":    "new.user@example.com",
		"phone":    "0911222333",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Registered accounts sign in as customers.
	res, err := c.Login(context.Background(), "newuser", "secret1")
	if err != nil {
		t.Fatalf("login as registered user: %v", err)
	}
	if res.Token == "" || res.RoleName != "CUSTOMER" {
		t.Errorf("login result = %+v", res)
	}

	// A taken username conflicts, demo accounts included.
	for _, taken := range []string{"newuser", "admin"} {
		err := c.Register(context.Background(), map[string]string{
			"username": taken, "password": "whatever",
		})
		var apiErr *api.Error
		if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindConflict {
			t.Errorf("register %q error = %v, want conflict", taken, err)
		}
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	c, _, _ := client(t)

	if err := c.ForgotPassword(context.Background(), "customer1@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	err := c.ForgotPassword(context.Background(), "")
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindValidation {
		t.Errorf("forgot with empty email error = %v, want validation", err)
	}

	if err := c.ResetPassword(context.Background(), "token-from-email", "newsecret"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	err = c.ResetPassword(context.Background(), "", "newsecret")
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindValidation {
		t.Errorf("reset with empty token error = %v, want validation", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	c, _, _ := client(t)
	_, err := c.Login(context.Background(), "admin", "wrong")
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindAuthExpired {
		t.Fatalf("error = %v, want a 401", err)
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	c, _, _ := client(t)
	_, err := c.ListParts(context.Background(), 0, 10, "")
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401 without a token", err)
	}
}

func TestCustomerRoundTrip(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "admin")

	created, err := c.CreateCustomer(context.Background(), map[string]string{
		"name":  "Test Person",
		"email": "test.person@example.com",
		"phone": "0912345678",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CustomerID == "" {
		t.Fatal("created customer has no id")
	}

	// The fresh record must appear on the first page.
	page, err := c.ListCustomers(context.Background(), 0, 10, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, row := range page.Items {
		if row.CustomerID == created.CustomerID {
			found = true
		}
	}
	if !found {
		t.Errorf("created customer missing from page 0: %+v", page.Items)
	}

	// Update, then delete.
	updated, err := c.UpdateCustomer(context.Background(), created.CustomerID, map[string]string{
		"name":  "Renamed Person",
		"email": "test.person@example.com",
		"phone": "0912345678",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed Person" || updated.CustomerID != created.CustomerID {
		t.Errorf("updated = %+v", updated)
	}

	if err := c.DeleteCustomer(context.Background(), created.CustomerID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteCustomer(context.Background(), created.CustomerID); err == nil {
		t.Error("second delete of the same id succeeded")
	}
}

func TestCreateCustomerDuplicateConflict(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "admin")

	draft := map[string]string{
		"name":  "Dup Person",
		"email": "dup@example.com",
		"phone": "0987654321",
	}
	if _, err := c.CreateCustomer(context.Background(), draft); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := c.CreateCustomer(context.Background(), draft)
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindConflict {
		t.Fatalf("duplicate create error = %v, want conflict", err)
	}
}

func TestPaginationWindows(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "admin")

	first, err := c.ListParts(context.Background(), 0, 5, "")
	if err != nil {
		t.Fatalf("page 0: %v", err)
	}
	if len(first.Items) != 5 || !first.First || first.Last {
		t.Errorf("page 0 = %d rows first=%v last=%v", len(first.Items), first.First, first.Last)
	}

	last, err := c.ListParts(context.Background(), first.TotalPages-1, 5, "")
	if err != nil {
		t.Fatalf("last page: %v", err)
	}
	if !last.Last || last.First {
		t.Errorf("last page meta = %+v", last)
	}

	// Past-the-end pages are empty, not errors.
	past, err := c.ListParts(context.Background(), first.TotalPages+3, 5, "")
	if err != nil {
		t.Fatalf("past-the-end page: %v", err)
	}
	if len(past.Items) != 0 {
		t.Errorf("past-the-end page returned rows: %+v", past.Items)
	}
}

func TestPartSearchFilters(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "admin")

	page, err := c.ListParts(context.Background(), 0, 20, "battery")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(page.Items) == 0 {
		t.Fatal("search for battery matched nothing in the seed data")
	}
	for _, p := range page.Items {
		if !containsFold(p.PartName, "battery") {
			t.Errorf("search result %q does not match the filter", p.PartName)
		}
	}
}

func TestClaimStatusTransition(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "staff")

	page, err := c.ListClaims(context.Background(), 0, 5, "")
	if err != nil || len(page.Items) == 0 {
		t.Fatalf("list claims: %v (%d rows)", err, len(page.Items))
	}
	id := page.Items[0].WarrantyClaimID

	claim, err := c.UpdateClaimStatus(context.Background(), id, api.ClaimCompleted)
	if err != nil {
		t.Fatalf("status update: %v", err)
	}
	if claim.Status != api.ClaimCompleted {
		t.Errorf("status = %q", claim.Status)
	}
	if claim.ResolutionDate == "" {
		t.Error("completing a claim did not stamp a resolution date")
	}

	got, err := c.GetClaim(context.Background(), id)
	if err != nil {
		t.Fatalf("get claim: %v", err)
	}
	if got.Status != api.ClaimCompleted {
		t.Errorf("fetched status = %q, transition did not persist", got.Status)
	}
}

func TestCreateClaimValidatesVIN(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "customer")

	_, err := c.CreateClaim(context.Background(), map[string]any{
		"vehicleVin":  "ZZZZZZZZZZZZZZZZZ",
		"description": "Something is broken",
	})
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindValidation {
		t.Fatalf("unknown VIN error = %v, want validation", err)
	}

	claim, err := c.CreateClaim(context.Background(), map[string]any{
		"vehicleVin":  "RLVVF8EL5PC012345",
		"description": "Battery loses charge overnight",
	})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if claim.Status != api.ClaimSubmitted || claim.Vehicle == nil {
		t.Errorf("claim = %+v", claim)
	}
}

func TestMyVehiclesIsBareArray(t *testing.T) {
	c, sess, srv := client(t)
	login(t, c, sess, "customer")

	// Assert the raw shape first: no envelope.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/vehicles/my-vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token())
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(res.Body)
	if !bytes.HasPrefix(bytes.TrimSpace(buf.Bytes()), []byte("[")) {
		t.Fatalf("my-vehicles body is not a bare array: %s", buf.String())
	}

	// And the gateway still yields a usable single page.
	page, err := c.MyVehicles(context.Background())
	if err != nil {
		t.Fatalf("MyVehicles: %v", err)
	}
	if len(page.Items) == 0 || page.TotalPages != 1 {
		t.Errorf("page = %+v", page)
	}
}

func TestFeedbackLifecycle(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "customer")

	claims, err := c.MyClaims(context.Background(), 0, 5)
	if err != nil || len(claims.Items) == 0 {
		t.Fatalf("my claims: %v", err)
	}
	claimID := claims.Items[0].WarrantyClaimID

	fb, err := c.CreateFeedback(context.Background(), map[string]any{
		"warrantyClaimId": claimID,
		"rating":          4,
		"comment":         "Handled well",
	})
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	byClaim, err := c.FeedbacksByClaim(context.Background(), claimID)
	if err != nil {
		t.Fatalf("by claim: %v", err)
	}
	found := false
	for _, f := range byClaim.Items {
		if f.FeedbackID == fb.FeedbackID {
			found = true
		}
	}
	if !found {
		t.Errorf("new feedback missing from by-claim list: %+v", byClaim.Items)
	}

	_, err = c.CreateFeedback(context.Background(), map[string]any{
		"warrantyClaimId": claimID,
		"rating":          9,
	})
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindValidation {
		t.Errorf("out-of-range rating error = %v, want validation", err)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	c, sess, _ := client(t)
	login(t, c, sess, "admin")

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// The token is now unknown to the server; the next call comes back 401.
	_, err := c.ListParts(context.Background(), 0, 10, "")
	var apiErr *api.Error
	if !asAPIError(err, &apiErr) || apiErr.Kind != api.KindAuthExpired {
		t.Fatalf("post-logout error = %v, want auth-expired", err)
	}
}

func asAPIError(err error, target **api.Error) bool {
	if err == nil {
		return false
	}
	e, ok := err.(*api.Error)
	if ok {
		*target = e
	}
	return ok
}

func containsFold(s, sub string) bool {
	return bytes.Contains(bytes.ToLower([]byte(s)), bytes.ToLower([]byte(sub)))
}
