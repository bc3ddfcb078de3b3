package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"warranty-tui/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	return s
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sess := newTestStore(t)
	c := New(srv.URL, sess)

	if _, err := c.Do(context.Background(), http.MethodGet, "/api/parts", nil); err != nil {
		t.Fatalf("Do without token: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization sent without a stored token: %q", gotAuth)
	}

	sess.Set(session.KeyToken, "abc123")
	if _, err := c.Do(context.Background(), http.MethodGet, "/api/parts", nil); err != nil {
		t.Fatalf("Do with token: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q, want Bearer abc123", gotAuth)
	}
}

func TestDoStatusToKind(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuthExpired},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			}))
			defer srv.Close()

			c := New(srv.URL, newTestStore(t))
			_, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if apiErr.Kind != tt.want || apiErr.Status != tt.status {
				t.Errorf("got kind=%v status=%d, want kind=%v status=%d",
					apiErr.Kind, apiErr.Status, tt.want, tt.status)
			}
			if apiErr.Message != "nope" {
				t.Errorf("message = %q, want the backend's message", apiErr.Message)
			}
		})
	}
}

func TestDoUnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := newTestStore(t)
	sess.Set(session.KeyToken, "expired-token")
	sess.Set(session.KeyUsername, "an")

	c := New(srv.URL, sess)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/customers", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindAuthExpired {
		t.Fatalf("error = %v, want auth-expired", err)
	}

	if sess.Token() != "" {
		t.Error("token survived a 401")
	}
	if sess.Get(session.KeyUsername) != "an" {
		t.Error("401 cleared more than the token")
	}
}

func TestDoForbiddenKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sess := newTestStore(t)
	sess.Set(session.KeyToken, "valid-but-underprivileged")

	c := New(srv.URL, sess)
	_, err := c.Do(context.Background(), http.MethodGet, "/api/parts", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindForbidden {
		t.Fatalf("error = %v, want forbidden", err)
	}
	if sess.Token() == "" {
		t.Error("403 cleared the token; only 401 should")
	}
}

func TestDoConnectionError(t *testing.T) {
	// A closed server gives a refused connection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, newTestStore(t))
	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindConnection {
		t.Fatalf("error = %v, want connection", err)
	}
	if apiErr.Message == "" {
		t.Error("connection error carried no message")
	}
}

func TestDoNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	_, err := c.Do(context.Background(), http.MethodGet, "/x", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Message == "" {
		t.Error("non-JSON body produced an empty message")
	}
}

func TestListCustomersAgainstEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page query = %q, want 2", got)
		}
		if got := r.URL.Query().Get("search"); got != "an" {
			t.Errorf("search query = %q, want an", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"customerId": "c1", "name": "Nguyen Van An", "email": "an@example.com"},
			},
			"pageNumber":    2,
			"pageSize":      10,
			"totalElements": 21,
			"totalPages":    3,
			"first":         false,
			"last":          true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	page, err := c.ListCustomers(context.Background(), 2, 10, "an")
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Nguyen Van An" {
		t.Errorf("items = %+v", page.Items)
	}
	if page.PageNumber != 2 || page.TotalPages != 3 || page.TotalElements != 21 {
		t.Errorf("page meta = %+v", page)
	}
}

func TestMyVehiclesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"vehicleId": 1, "vehicleName": "VF 8", "vehicleVin": "RLVVF8EL5PC012345"},
			{"vehicleId": 2, "vehicleName": "VF 9", "vehicleVin": "RLVVF9EL2PC067890"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	page, err := c.MyVehicles(context.Background())
	if err != nil {
		t.Fatalf("MyVehicles: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("items = %+v, want 2 vehicles", page.Items)
	}
	if page.TotalPages != 1 || page.PageNumber != 0 || !page.First || !page.Last {
		t.Errorf("bare array not normalized to a single page: %+v", page)
	}
}

func TestCustomerByEmailSingularObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"customerId": "c9", "name": "Tran Thi Binh", "email": "binh@example.com"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	page, err := c.CustomerByEmail(context.Background(), "binh@example.com")
	if err != nil {
		t.Fatalf("CustomerByEmail: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].CustomerID != "c9" {
		t.Fatalf("items = %+v, want the one matching customer", page.Items)
	}
	if page.TotalElements != 1 || page.TotalPages != 1 {
		t.Errorf("singular object not folded into a one-row page: %+v", page)
	}
}
