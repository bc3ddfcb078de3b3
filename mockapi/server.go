// Package mockapi is a self-contained stand-in for the warranty backend.
// It serves the same paths and response shapes over in-memory data, so the
// TUI can be developed and demoed without the real service. It is also the
// live fixture for the gateway's integration tests.
package mockapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"warranty-tui/api"
)

// Server holds the in-memory dataset behind the demo endpoints.
type Server struct {
	mu        sync.Mutex
	customers []api.Customer
	parts     []api.Part
	claims    []api.WarrantyClaim
	feedbacks []api.Feedback
	vehicles  []api.Vehicle
	services  []api.ServiceHistory

	tokens      map[string]account // bearer token -> account
	users       map[string]string  // registered username -> password
	nextClaimID int64
	nextFbID    int64
}

type account struct {
	Username string
	Role     string
}

// Demo credentials: username doubles as the password.
var demoAccounts = map[string]string{
	"admin":    "ADMIN",
	"staff":    "SC_STAFF",
	"tech":     "SC_TECHNICIAN",
	"evm":      "EVM_STAFF",
	"customer": "CUSTOMER",
}

func NewServer() *Server {
	s := &Server{
		tokens:      make(map[string]account),
		users:       make(map[string]string),
		nextClaimID: 1000,
		nextFbID:    1,
	}
	s.seed()
	return s
}

// Router wires every route the TUI calls.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/auth/logout", s.handleLogout).Methods("POST")
	r.HandleFunc("/api/auth/forgot-password", s.handleForgotPassword).Methods("POST")
	r.HandleFunc("/api/auth/reset-password", s.handleResetPassword).Methods("POST")

	p := r.NewRoute().Subrouter()
	p.Use(s.requireAuth)
	p.HandleFunc("/api/customers", s.handleListCustomers).Methods("GET")
	p.HandleFunc("/api/customers", s.handleCreateCustomer).Methods("POST")
	p.HandleFunc("/api/customers/by-email", s.handleCustomerByEmail).Methods("GET")
	p.HandleFunc("/api/customers/{id}", s.handleUpdateCustomer).Methods("PUT")
	p.HandleFunc("/api/customers/{id}", s.handleDeleteCustomer).Methods("DELETE")

	p.HandleFunc("/api/parts", s.handleListParts).Methods("GET")
	p.HandleFunc("/api/parts", s.handleCreatePart).Methods("POST")
	p.HandleFunc("/api/parts/{id}", s.handleUpdatePart).Methods("PUT")
	p.HandleFunc("/api/parts/{id}", s.handleDeletePart).Methods("DELETE")

	p.HandleFunc("/api/warranty-claims", s.handleListClaims).Methods("GET")
	p.HandleFunc("/api/warranty-claims", s.handleCreateClaim).Methods("POST")
	p.HandleFunc("/api/warranty-claims/my-claims", s.handleMyClaims).Methods("GET")
	p.HandleFunc("/api/warranty-claims/{id}", s.handleGetClaim).Methods("GET")
	p.HandleFunc("/api/warranty-claims/{id}/status", s.handleClaimStatus).Methods("PUT")

	p.HandleFunc("/api/feedbacks", s.handleListFeedbacks).Methods("GET")
	p.HandleFunc("/api/feedbacks", s.handleCreateFeedback).Methods("POST")
	p.HandleFunc("/api/feedbacks/by-claim/{id}", s.handleFeedbacksByClaim).Methods("GET")
	p.HandleFunc("/api/feedbacks/{id}", s.handleDeleteFeedback).Methods("DELETE")

	p.HandleFunc("/api/vehicles/my-vehicles", s.handleMyVehicles).Methods("GET")
	p.HandleFunc("/api/service-histories/my-services", s.handleMyServices).Methods("GET")

	r.Use(loggingMiddleware)
	return r
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		writer := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(writer, r)
		log.Printf("request method=%s path=%s status=%d duration_ms=%d",
			r.Method, r.URL.Path, writer.status, time.Since(start).Milliseconds())
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		_, ok := s.tokens[token]
		s.mu.Unlock()
		if token == "" || !ok {
			writeError(w, http.StatusUnauthorized, "Missing or expired token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// pagedResponse mirrors the real backend's envelope.
type pagedResponse[T any] struct {
	Content       []T  `json:"content"`
	PageNumber    int  `json:"pageNumber"`
	PageSize      int  `json:"pageSize"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

func paginate[T any](items []T, r *http.Request) pagedResponse[T] {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return pagedResponse[T]{
		Content:       append([]T{}, items[start:end]...),
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          totalPages == 0 || page >= totalPages-1,
	}
}

func readBody(r *http.Request, v any) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}

// --- auth ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !readBody(r, &req) {
		writeError(w, http.StatusBadRequest, "Malformed login request")
		return
	}

	role, ok := demoAccounts[req.Username]
	if ok && req.Password != req.Username {
		ok = false
	}
	if !ok {
		// Accounts created through register sign in as customers.
		s.mu.Lock()
		password, registered := s.users[req.Username]
		s.mu.Unlock()
		if !registered || password != req.Password {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		role = "CUSTOMER"
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = account{Username: req.Username, Role: role}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.LoginResult{
		Token:    token,
		Username: req.Username,
		RoleName: role,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !readBody(r, &req) || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := demoAccounts[req.Username]; taken {
		writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	if _, taken := s.users[req.Username]; taken {
		writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	s.users[req.Username] = req.Password
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Registered"})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !readBody(r, &req) || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	// No mail here; the reset endpoint accepts any non-empty token.
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reset token sent"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if !readBody(r, &req) || req.Token == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Token and new password are required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// --- customers ---

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	items := make([]api.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if search == "" || strings.Contains(strings.ToLower(c.Name), search) {
			items = append(items, c)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, paginate(items, r))
}

// handleCustomerByEmail answers with a singular object, like the real
// backend's search-by-email endpoint does.
func (s *Server) handleCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(r.URL.Query().Get("email"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if strings.ToLower(c.Email) == email {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "No customer with that email")
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c api.Customer
	if !readBody(r, &c) || c.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customers {
		if strings.EqualFold(existing.Email, c.Email) || existing.Phone == c.Phone {
			writeError(w, http.StatusConflict, "Email or phone already registered")
			return
		}
	}
	c.CustomerID = uuid.NewString()
	s.customers = append([]api.Customer{c}, s.customers...)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var c api.Customer
	if !readBody(r, &c) {
		writeError(w, http.StatusBadRequest, "Malformed customer")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == id {
			c.CustomerID = id
			s.customers[i] = c
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Customer not found")
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Customer not found")
}

// --- parts ---

func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	items := make([]api.Part, 0, len(s.parts))
	for _, p := range s.parts {
		if search == "" ||
			strings.Contains(strings.ToLower(p.PartName), search) ||
			strings.Contains(strings.ToLower(p.PartNumber), search) {
			items = append(items, p)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, paginate(items, r))
}

func (s *Server) handleCreatePart(w http.ResponseWriter, r *http.Request) {
	var p api.Part
	if !readBody(r, &p) || p.PartName == "" {
		writeError(w, http.StatusBadRequest, "Part name is required")
		return
	}
	if p.MaxStock < p.MinStock {
		writeError(w, http.StatusBadRequest, "Max stock must not be below min stock")
		return
	}

	s.mu.Lock()
	p.PartID = uuid.NewString()
	s.parts = append([]api.Part{p}, s.parts...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var p api.Part
	if !readBody(r, &p) {
		writeError(w, http.StatusBadRequest, "Malformed part")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parts {
		if s.parts[i].PartID == id {
			p.PartID = id
			s.parts[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Part not found")
}

func (s *Server) handleDeletePart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parts {
		if s.parts[i].PartID == id {
			s.parts = append(s.parts[:i], s.parts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Part not found")
}

// --- warranty claims ---

func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	status := strings.ToUpper(r.URL.Query().Get("status"))

	s.mu.Lock()
	items := make([]api.WarrantyClaim, 0, len(s.claims))
	for _, c := range s.claims {
		if status == "" || c.Status == status {
			items = append(items, c)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, paginate(items, r))
}

func (s *Server) handleMyClaims(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]api.WarrantyClaim{}, s.claims...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(items, r))
}

func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.claims {
		if c.WarrantyClaimID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Claim not found")
}

func (s *Server) handleCreateClaim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VehicleVIN  string `json:"vehicleVin"`
		Description string `json:"description"`
	}
	if !readBody(r, &req) || req.Description == "" {
		writeError(w, http.StatusBadRequest, "Description is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	claim := api.WarrantyClaim{
		WarrantyClaimID: s.nextClaimID,
		ClaimDate:       time.Now().Format(time.RFC3339),
		Status:          api.ClaimSubmitted,
		Description:     req.Description,
	}
	s.nextClaimID++

	for i := range s.vehicles {
		if s.vehicles[i].VehicleVIN == req.VehicleVIN {
			v := s.vehicles[i]
			claim.Vehicle = &v
			break
		}
	}
	if claim.Vehicle == nil {
		writeError(w, http.StatusBadRequest, "No vehicle with that VIN")
		return
	}

	s.claims = append([]api.WarrantyClaim{claim}, s.claims...)
	writeJSON(w, http.StatusCreated, claim)
}

func (s *Server) handleClaimStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req struct {
		Status string `json:"status"`
	}
	if !readBody(r, &req) || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.claims {
		if s.claims[i].WarrantyClaimID == id {
			s.claims[i].Status = strings.ToUpper(req.Status)
			if s.claims[i].Status == api.ClaimCompleted || s.claims[i].Status == api.ClaimRejected {
				s.claims[i].ResolutionDate = time.Now().Format(time.RFC3339)
			}
			writeJSON(w, http.StatusOK, s.claims[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Claim not found")
}

// --- feedbacks ---

func (s *Server) handleListFeedbacks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]api.Feedback{}, s.feedbacks...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(items, r))
}

func (s *Server) handleFeedbacksByClaim(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	items := make([]api.Feedback, 0)
	for _, f := range s.feedbacks {
		if f.WarrantyClaimID == id {
			items = append(items, f)
		}
	}
	s.mu.Unlock()

	// Bare array on purpose: the real backend skips the envelope here.
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var f api.Feedback
	if !readBody(r, &f) {
		writeError(w, http.StatusBadRequest, "Malformed feedback")
		return
	}
	if f.Rating < 1 || f.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	s.mu.Lock()
	f.FeedbackID = s.nextFbID
	s.nextFbID++
	f.CreatedAt = time.Now().Format(time.RFC3339)
	s.feedbacks = append([]api.Feedback{f}, s.feedbacks...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, f)
}

func (s *Server) handleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.feedbacks {
		if s.feedbacks[i].FeedbackID == id {
			s.feedbacks = append(s.feedbacks[:i], s.feedbacks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Feedback not found")
}

// --- customer-scoped reads ---

// Both endpoints answer with bare arrays, exercising the gateway's
// single-page normalization.

func (s *Server) handleMyVehicles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]api.Vehicle{}, s.vehicles...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleMyServices(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]api.ServiceHistory{}, s.services...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}
