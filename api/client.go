// Package api is the request gateway between the TUI and the warranty
// backend. It owns header and bearer-token attachment, response-shape
// normalization, and the translation of HTTP failures into the error
// taxonomy the screens render.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"warranty-tui/session"
)

// Client performs authenticated calls against one backend base URL.
type Client struct {
	base string
	http *http.Client
	sess *session.Store
}

// New builds a client. The session store supplies the bearer token and is
// where an expired token gets cleared.
func New(base string, sess *session.Store) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		sess: sess,
	}
}

// Do issues one JSON request and returns the raw response body. All
// failures come back as *Error; callers never see a transport or parse
// error directly.
//
// The Authorization header is attached only when a token is stored; the
// request is still attempted without one since some endpoints are public.
// A 401 clears the stored token so the next protected navigation lands on
// the login screen.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindConnection, Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// Tunnel artifact kept for parity with the deployed backend.
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: fallbackMessage(KindConnection)}
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusUnauthorized {
		c.sess.Delete(session.KeyToken)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		kind := kindForStatus(res.StatusCode)
		msg := bodyMessage(raw)
		if msg == "" {
			msg = fallbackMessage(kind)
		}
		return nil, &Error{Kind: kind, Status: res.StatusCode, Message: msg}
	}

	return raw, nil
}

// bodyMessage extracts a backend-supplied message from an error body.
// Non-JSON bodies are used verbatim when short enough; parse failures never
// surface.
func bodyMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}

	text := string(raw)
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

// decode unmarshals a response body into out, tolerating empty bodies.
func decode(raw json.RawMessage, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindServer, Message: "Unexpected response from the server"}
	}
	return nil
}
