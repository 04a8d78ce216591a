// Package client is the HTTP client for the barberly backend. Every call
// is parameterized by the single configured backend base address.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"barberly/config"
	"barberly/models"

	"go.uber.org/zap"
)

// ErrBarberNotFound is returned when a lookup matches no barber record.
var ErrBarberNotFound = errors.New("barber not found")

// APIError carries the status and message of a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Client talks to the booking backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	token      string
}

// New creates a Client for the given backend base address.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// NewFromConfig creates a Client pointed at the configured backend base
// address.
func NewFromConfig(logger *zap.Logger) *Client {
	return New(config.AppConfig.BackendBaseURL, logger)
}

// SetToken records the auth token issued by the login flow. Subsequent
// requests carry it as a bearer credential; protected endpoints such as
// session creation reject requests made without one.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LookupBarber fetches a single barber by identifier. The backend answers
// with a collection; an empty one is reported as ErrBarberNotFound
// instead of being indexed blindly.
func (c *Client) LookupBarber(ctx context.Context, id string) (*models.Barber, error) {
	params := url.Values{}
	params.Set("id", id)

	var barbers []models.Barber
	if err := c.getJSON(ctx, "/get_barber", params, &barbers); err != nil {
		return nil, err
	}
	if len(barbers) == 0 {
		return nil, ErrBarberNotFound
	}
	return &barbers[0], nil
}

// SearchBarbers runs a filtered barber search. A criterion at its default
// value is omitted from the query string so the backend applies its own
// default semantics.
func (c *Client) SearchBarbers(ctx context.Context, filter models.BarberFilter) ([]models.Barber, error) {
	params := url.Values{}
	if filter.Name != "" {
		params.Set("name", filter.Name)
	}
	if filter.MinRating > models.DefaultMinRating {
		params.Set("rating", strconv.FormatFloat(filter.MinRating, 'f', -1, 64))
	}
	if filter.MaxCost != models.DefaultMaxCost && filter.MaxCost > 0 {
		params.Set("cost", strconv.FormatFloat(filter.MaxCost, 'f', -1, 64))
	}
	if filter.Gender != "" && filter.Gender != models.DefaultGender {
		params.Set("gender", filter.Gender)
	}
	if filter.Hairstyle != "" {
		params.Set("hairstyles", filter.Hairstyle)
	}
	if filter.Neighborhood != "" {
		params.Set("location", filter.Neighborhood)
	}
	if filter.WillTravel != nil {
		params.Set("will_travel", strconv.FormatBool(*filter.WillTravel))
	}

	var barbers []models.Barber
	if err := c.getJSON(ctx, "/get_barber", params, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// CreateSession submits a session request and returns the backend's
// acknowledgment.
func (c *Client) CreateSession(ctx context.Context, req *models.SessionRequest) (*models.SessionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create_session", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp models.SessionResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserSessions lists the sessions booked by a user.
func (c *Client) UserSessions(ctx context.Context, userID string) (*models.SessionList, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	var list models.SessionList
	if err := c.getJSON(ctx, "/get_user_sessions", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// BarberSessions lists the sessions booked with a barber.
func (c *Client) BarberSessions(ctx context.Context, barberID string) (*models.SessionList, error) {
	params := url.Values{}
	params.Set("barber_id", barberID)

	var list models.SessionList
	if err := c.getJSON(ctx, "/get_barber_sessions", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Me fetches the authenticated user from the backend using the token set
// via SetToken; there is no hardcoded stand-in user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(httpReq, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(httpReq, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Message: string(msg)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}
