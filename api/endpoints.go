package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Typed wrappers over the backend's REST surface. Every list call funnels
// through DecodePage so controllers only ever see the normalized Page shape.

func pageQuery(page, size int, extra url.Values) string {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("size", fmt.Sprintf("%d", size))
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return "?" + q.Encode()
}

// --- auth ---

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}
	var out LoginResult
	if err := decode(raw, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, body any) error {
	_, err := c.Do(ctx, http.MethodPost, "/api/auth/register", body)
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.Do(ctx, http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email})
	return err
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := c.Do(ctx, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token":       token,
		"newPassword": newPassword,
	})
	return err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

// --- customers ---

func (c *Client) ListCustomers(ctx context.Context, page, size int, search string) (Page[Customer], error) {
	extra := url.Values{}
	if search != "" {
		extra.Set("search", search)
	}
	raw, err := c.Do(ctx, http.MethodGet, "/api/customers"+pageQuery(page, size, extra), nil)
	if err != nil {
		return Page[Customer]{}, err
	}
	return DecodePage[Customer](raw)
}

// CustomerByEmail hits a search endpoint that answers with a singular
// object; DecodePage folds it into a one-row page.
func (c *Client) CustomerByEmail(ctx context.Context, email string) (Page[Customer], error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/customers/by-email?email="+url.QueryEscape(email), nil)
	if err != nil {
		return Page[Customer]{}, err
	}
	return DecodePage[Customer](raw)
}

func (c *Client) CreateCustomer(ctx context.Context, draft any) (Customer, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/customers", draft)
	if err != nil {
		return Customer{}, err
	}
	var out Customer
	if err := decode(raw, &out); err != nil {
		return Customer{}, err
	}
	return out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, draft any) (Customer, error) {
	raw, err := c.Do(ctx, http.MethodPut, "/api/customers/"+url.PathEscape(id), draft)
	if err != nil {
		return Customer{}, err
	}
	var out Customer
	if err := decode(raw, &out); err != nil {
		return Customer{}, err
	}
	return out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/api/customers/"+url.PathEscape(id), nil)
	return err
}

// --- parts ---

func (c *Client) ListParts(ctx context.Context, page, size int, search string) (Page[Part], error) {
	extra := url.Values{}
	if search != "" {
		extra.Set("search", search)
	}
	raw, err := c.Do(ctx, http.MethodGet, "/api/parts"+pageQuery(page, size, extra), nil)
	if err != nil {
		return Page[Part]{}, err
	}
	return DecodePage[Part](raw)
}

func (c *Client) CreatePart(ctx context.Context, draft any) (Part, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/parts", draft)
	if err != nil {
		return Part{}, err
	}
	var out Part
	if err := decode(raw, &out); err != nil {
		return Part{}, err
	}
	return out, nil
}

func (c *Client) UpdatePart(ctx context.Context, id string, draft any) (Part, error) {
	raw, err := c.Do(ctx, http.MethodPut, "/api/parts/"+url.PathEscape(id), draft)
	if err != nil {
		return Part{}, err
	}
	var out Part
	if err := decode(raw, &out); err != nil {
		return Part{}, err
	}
	return out, nil
}

func (c *Client) DeletePart(ctx context.Context, id string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/api/parts/"+url.PathEscape(id), nil)
	return err
}

// --- warranty claims ---

func (c *Client) ListClaims(ctx context.Context, page, size int, status string) (Page[WarrantyClaim], error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	raw, err := c.Do(ctx, http.MethodGet, "/api/warranty-claims"+pageQuery(page, size, extra), nil)
	if err != nil {
		return Page[WarrantyClaim]{}, err
	}
	return DecodePage[WarrantyClaim](raw)
}

func (c *Client) MyClaims(ctx context.Context, page, size int) (Page[WarrantyClaim], error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/warranty-claims/my-claims"+pageQuery(page, size, nil), nil)
	if err != nil {
		return Page[WarrantyClaim]{}, err
	}
	return DecodePage[WarrantyClaim](raw)
}

func (c *Client) GetClaim(ctx context.Context, id int64) (WarrantyClaim, error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/warranty-claims/%d", id), nil)
	if err != nil {
		return WarrantyClaim{}, err
	}
	var out WarrantyClaim
	if err := decode(raw, &out); err != nil {
		return WarrantyClaim{}, err
	}
	return out, nil
}

func (c *Client) CreateClaim(ctx context.Context, draft any) (WarrantyClaim, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/warranty-claims", draft)
	if err != nil {
		return WarrantyClaim{}, err
	}
	var out WarrantyClaim
	if err := decode(raw, &out); err != nil {
		return WarrantyClaim{}, err
	}
	return out, nil
}

func (c *Client) UpdateClaimStatus(ctx context.Context, id int64, status string) (WarrantyClaim, error) {
	raw, err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/warranty-claims/%d/status", id), map[string]string{"status": status})
	if err != nil {
		return WarrantyClaim{}, err
	}
	var out WarrantyClaim
	if err := decode(raw, &out); err != nil {
		return WarrantyClaim{}, err
	}
	return out, nil
}

// --- feedbacks ---

func (c *Client) ListFeedbacks(ctx context.Context, page, size int) (Page[Feedback], error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/feedbacks"+pageQuery(page, size, nil), nil)
	if err != nil {
		return Page[Feedback]{}, err
	}
	return DecodePage[Feedback](raw)
}

func (c *Client) FeedbacksByClaim(ctx context.Context, claimID int64) (Page[Feedback], error) {
	raw, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/feedbacks/by-claim/%d", claimID), nil)
	if err != nil {
		return Page[Feedback]{}, err
	}
	return DecodePage[Feedback](raw)
}

func (c *Client) CreateFeedback(ctx context.Context, draft any) (Feedback, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/feedbacks", draft)
	if err != nil {
		return Feedback{}, err
	}
	var out Feedback
	if err := decode(raw, &out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id int64) error {
	_, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/feedbacks/%d", id), nil)
	return err
}

// --- customer-scoped reads ---

func (c *Client) MyVehicles(ctx context.Context) (Page[Vehicle], error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/vehicles/my-vehicles", nil)
	if err != nil {
		return Page[Vehicle]{}, err
	}
	return DecodePage[Vehicle](raw)
}

func (c *Client) MyServices(ctx context.Context) (Page[ServiceHistory], error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/service-histories/my-services", nil)
	if err != nil {
		return Page[ServiceHistory]{}, err
	}
	return DecodePage[ServiceHistory](raw)
}
