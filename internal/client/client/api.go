package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

// API paths, relative to the base URL.
const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathLogout   = "/auth/logout"
	pathRefresh  = "/auth/refresh"
	pathProfile  = "/users/profile"
	pathStats    = "/dashboard/stats"
	pathGoals    = "/goals"
	pathHealth   = "/health"
)

func goalPath(id string) string {
	return pathGoals + "/" + id
}

// tokenResponse accepts the token under any of the names servers commonly use.
type tokenResponse struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token"`
	CamelToken  string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

func (t tokenResponse) token() string {
	switch {
	case t.AccessToken != "":
		return t.AccessToken
	case t.Token != "":
		return t.Token
	default:
		return t.CamelToken
	}
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResult, error) {
	var resp tokenResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: pathLogin, body: creds}, &resp); err != nil {
		return nil, err
	}
	tok := resp.token()
	if tok == "" {
		return nil, fmt.Errorf("login: %w", common.ErrorNoToken)
	}
	return &models.LoginResult{Token: tok, User: resp.User}, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, request{method: http.MethodPost, path: pathRegister, body: reg}, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: pathLogout}, nil)
}

// Refresh exchanges the current token for a new one.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: pathRefresh}, &resp); err != nil {
		return "", err
	}
	tok := resp.token()
	if tok == "" {
		return "", fmt.Errorf("refresh: %w", common.ErrorNoToken)
	}
	return tok, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, request{method: http.MethodGet, path: pathProfile}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	stats := models.DashboardStats{}
	if err := c.do(ctx, request{method: http.MethodGet, path: pathStats}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListGoals fetches one page of goals. The server may answer with
// {"goals": [...], "total": n} or with a bare array; any other shape is
// treated as an empty page.
func (c *HTTPClient) ListGoals(ctx context.Context, p models.ListParams) (*models.GoalPage, error) {
	raw, err := c.send(ctx, request{method: http.MethodGet, path: pathGoals, query: p.Query()})
	if err != nil {
		return nil, err
	}
	return decodeGoalPage(raw), nil
}

func decodeGoalPage(raw []byte) *models.GoalPage {
	var wrapped struct {
		Goals []models.Goal `json:"goals"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Goals != nil {
		total := wrapped.Total
		if total == 0 {
			total = len(wrapped.Goals)
		}
		return &models.GoalPage{Goals: wrapped.Goals, Total: total}
	}

	var bare []models.Goal
	if err := json.Unmarshal(raw, &bare); err == nil && bare != nil {
		return &models.GoalPage{Goals: bare, Total: len(bare)}
	}
	return &models.GoalPage{Goals: []models.Goal{}}
}

func (c *HTTPClient) CreateGoal(ctx context.Context, g models.NewGoal) (*models.Goal, error) {
	return c.goalCall(ctx, request{method: http.MethodPost, path: pathGoals, body: g})
}

func (c *HTTPClient) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	return c.goalCall(ctx, request{method: http.MethodGet, path: goalPath(id)})
}

func (c *HTTPClient) UpdateGoal(ctx context.Context, id string, u models.GoalUpdate) (*models.Goal, error) {
	return c.goalCall(ctx, request{method: http.MethodPut, path: goalPath(id), body: u})
}

// ToggleGoal flips the completion flag of a goal.
func (c *HTTPClient) ToggleGoal(ctx context.Context, id string) (*models.Goal, error) {
	body := map[string]bool{"toggle_completion": true}
	return c.goalCall(ctx, request{method: http.MethodPatch, path: goalPath(id), body: body})
}

func (c *HTTPClient) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: goalPath(id)}, nil)
}

// goalCall performs r and decodes a single goal, either bare or wrapped as
// {"goal": {...}}. An empty body yields a nil goal.
func (c *HTTPClient) goalCall(ctx context.Context, r request) (*models.Goal, error) {
	raw, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var wrapped struct {
		Goal *models.Goal `json:"goal"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Goal != nil {
		return wrapped.Goal, nil
	}

	var g models.Goal
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, &APIError{Kind: KindServer, Message: "malformed response", Err: err}
	}
	return &g, nil
}

// Ping checks that the API answers on /health. It never triggers the
// auth-failure handler.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.send(ctx, request{method: http.MethodGet, path: pathHealth, public: true})
	return err
}
