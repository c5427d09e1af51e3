package client

import (
	"context"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
)

// Client is the GoalKeeper REST API as seen by the services.
type Client interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResult, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	DashboardStats(ctx context.Context) (models.DashboardStats, error)

	ListGoals(ctx context.Context, p models.ListParams) (*models.GoalPage, error)
	CreateGoal(ctx context.Context, g models.NewGoal) (*models.Goal, error)
	GetGoal(ctx context.Context, id string) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, u models.GoalUpdate) (*models.Goal, error)
	ToggleGoal(ctx context.Context, id string) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token for outgoing requests; "" means none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthFailureHandler is notified once for every 401 response.
type AuthFailureHandler interface {
	HandleAuthFailure(ctx context.Context)
}
