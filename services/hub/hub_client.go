// Package hub talks to the member Hub, the external authority for role-based
// permission decisions. The core never decides permissions itself; it asks
// the Hub whether the acting user holds a role over a target user or org
// unit, and records which granting office matched for audit attribution.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"prestigeapi/pkg/errs"
)

// Office identifies a granting office matched by a permission check.
type Office struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Check is the outcome of a permission check: whether the role is held, and
// which offices grant it.
type Check struct {
	Granted bool
	Offices []Office
}

// Authority answers role checks for one acting user. Implemented by Session;
// tests substitute stubs.
type Authority interface {
	HasOverUser(ctx context.Context, userID int64, role string) (*Check, error)
	HasOverOrgUnit(ctx context.Context, unitID int64, role string) (*Check, error)
}

// Client is a long-lived Hub HTTP client. Per-request state (the caller's
// token) lives on the Session it hands out.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Hub client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Session binds the client to one caller's token.
func (c *Client) Session(token string) *Session {
	return &Session{client: c, token: token}
}

// Session is a token-scoped view of the Hub for a single request.
type Session struct {
	client *Client
	token  string
}

// CurrentUser resolves the token to the acting user's ID.
func (s *Session) CurrentUser(ctx context.Context) (int64, error) {
	body, status, err := s.get(ctx, "/v1/user/me", nil)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, errs.Authorizationf("invalid token")
	}
	var user struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return 0, errs.Dependency("malformed hub user response", err)
	}
	return user.ID, nil
}

// HasOverUser checks whether the session user holds role over the target user.
func (s *Session) HasOverUser(ctx context.Context, userID int64, role string) (*Check, error) {
	return s.check(ctx, fmt.Sprintf("/v1/office/me/user/%d", userID), role)
}

// HasOverOrgUnit checks whether the session user holds role over the org unit.
func (s *Session) HasOverOrgUnit(ctx context.Context, unitID int64, role string) (*Check, error) {
	return s.check(ctx, fmt.Sprintf("/v1/office/me/org-unit/%d", unitID), role)
}

func (s *Session) check(ctx context.Context, path, role string) (*Check, error) {
	body, status, err := s.get(ctx, path, url.Values{"roles": {role}})
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusOK:
		return &Check{Granted: true, Offices: parseOffices(body)}, nil
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		return &Check{Granted: false}, nil
	default:
		return nil, errs.Dependency("hub check failed", fmt.Errorf("status %d", status))
	}
}

func (s *Session) get(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("token", s.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.client.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, 0, errs.Dependency("hub request failed", err)
	}
	resp, err := s.client.http.Do(req)
	if err != nil {
		return nil, 0, errs.Dependency("hub unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errs.Dependency("hub response read failed", err)
	}
	return body, resp.StatusCode, nil
}

// parseOffices extracts granting offices from a check response. The Hub
// returns either a bare office array or an object wrapping one; an empty or
// unparseable body means the check passed without naming offices.
func parseOffices(body []byte) []Office {
	var offices []Office
	if err := json.Unmarshal(body, &offices); err == nil {
		return offices
	}
	var wrapped struct {
		Offices []Office `json:"offices"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Offices
	}
	return nil
}
