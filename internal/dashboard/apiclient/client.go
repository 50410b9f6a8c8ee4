// Package apiclient is the dashboard's HTTP client for the gym-platform
// admin API. Every request reads the persisted credential and, when one
// is present, attaches it as a bearer header. The attachment cannot be
// bypassed per call.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/credential"
)

// Client is the admin API client.
type Client struct {
	baseURL    string
	creds      credential.Store
	httpClient *http.Client
}

// New creates a client for the API at baseURL, reading bearer tokens
// from creds.
func New(baseURL string, creds credential.Store) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the flat login success shape.
type LoginResponse struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Phone  string      `json:"phone"`
	Role   domain.Role `json:"role"`
	Token  string      `json:"token"`
}

// MePayload is the raw identity-resolution envelope. Callers must check
// Success and User themselves: a 200 with the wrong shape is an invalid
// session, and that judgement belongs to the route guard, not here.
type MePayload struct {
	Success bool    `json:"success"`
	User    *MeUser `json:"user"`
}

// MeUser mirrors the wire identity record.
type MeUser struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  domain.Role `json:"role"`
}

// CreateGymRequest is the payload for POST /gyms.
type CreateGymRequest struct {
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	AdminEmail string          `json:"adminEmail"`
	Location   domain.Location `json:"location"`
	Amenities  []string        `json:"amenities"`
}

// RegisterAdminRequest is the payload for POST /auth/register/admin.
type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// GymList is the gym listing envelope.
type GymList struct {
	Success bool            `json:"success"`
	Data    []domain.Gym    `json:"data"`
	Stats   domain.GymStats `json:"stats"`
}

// UserList is the user listing envelope.
type UserList struct {
	Success    bool               `json:"success"`
	Data       []domain.User      `json:"data"`
	Pagination domain.Pagination  `json:"pagination"`
	Stats      domain.MemberStats `json:"stats"`
}

// ConsultantList is the consultant listing envelope.
type ConsultantList struct {
	Success    bool                   `json:"success"`
	Data       []domain.User          `json:"data"`
	Pagination domain.Pagination      `json:"pagination"`
	Stats      domain.ConsultantStats `json:"stats"`
}

// MetricsPayload is the platform overview envelope.
type MetricsPayload struct {
	Success bool                    `json:"success"`
	Metrics *domain.PlatformMetrics `json:"metrics"`
}

// Login authenticates and returns the session fields plus token. It
// does NOT persist the token; the caller decides that.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("apiclient.Login: %w", err)
	}
	return &resp, nil
}

// Me resolves the current credential to an identity payload.
func (c *Client) Me(ctx context.Context) (*MePayload, error) {
	var payload MePayload
	if err := c.get(ctx, "/auth/me", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout revokes the current credential on the server.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("apiclient.Logout: %w", err)
	}
	return nil
}

// RegisterAdmin creates a gym-admin account.
func (c *Client) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) error {
	if err := c.post(ctx, "/auth/register/admin", req, nil); err != nil {
		return fmt.Errorf("apiclient.RegisterAdmin: %w", err)
	}
	return nil
}

// CreateGym registers a new gym.
func (c *Client) CreateGym(ctx context.Context, req CreateGymRequest) error {
	if err := c.post(ctx, "/gyms", req, nil); err != nil {
		return fmt.Errorf("apiclient.CreateGym: %w", err)
	}
	return nil
}

// ListGyms fetches all gyms with their aggregates.
func (c *Client) ListGyms(ctx context.Context) (*GymList, error) {
	var list GymList
	if err := c.get(ctx, "/gyms", &list); err != nil {
		return nil, fmt.Errorf("apiclient.ListGyms: %w", err)
	}
	return &list, nil
}

// ListUsers fetches one page of platform accounts.
func (c *Client) ListUsers(ctx context.Context, page, limit int) (*UserList, error) {
	var list UserList
	if err := c.get(ctx, "/users?"+pageQuery(page, limit), &list); err != nil {
		return nil, fmt.Errorf("apiclient.ListUsers: %w", err)
	}
	return &list, nil
}

// ListConsultants fetches one page of consultant accounts.
func (c *Client) ListConsultants(ctx context.Context, page, limit int) (*ConsultantList, error) {
	var list ConsultantList
	if err := c.get(ctx, "/consultants?"+pageQuery(page, limit), &list); err != nil {
		return nil, fmt.Errorf("apiclient.ListConsultants: %w", err)
	}
	return &list, nil
}

// PlatformMetrics fetches the overview counters.
func (c *Client) PlatformMetrics(ctx context.Context) (*MetricsPayload, error) {
	var payload MetricsPayload
	if err := c.get(ctx, "/dashboard/metrics", &payload); err != nil {
		return nil, fmt.Errorf("apiclient.PlatformMetrics: %w", err)
	}
	return &payload, nil
}

func pageQuery(page, limit int) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return params.Encode()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The credential is re-read for every request; a token persisted or
	// erased elsewhere takes effect immediately.
	if token, err := c.creds.Get(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
