package services

import (
	"context"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	LoginRet    *models.LoginResult
	LoginErr    error
	RegisterErr error
	LogoutErr   error
	RefreshRet  string
	RefreshErr  error
	ProfileRet  *models.Profile
	ProfileErr  error
	StatsRet    models.DashboardStats
	StatsErr    error
	PingErr     error

	ListRet   *models.GoalPage
	ListErr   error
	GoalRet   *models.Goal
	GoalErr   error
	DeleteErr error

	LastLogin    models.LoginCredentials
	LastRegister models.Registration
	LastList     models.ListParams
	LastCreate   models.NewGoal
	LastUpdate   models.GoalUpdate
	LastID       string
	LogoutCalls  int
	Calls        []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, c models.LoginCredentials) (*models.LoginResult, error) {
	f.Calls = append(f.Calls, "login")
	f.LastLogin = c
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, r models.Registration) error {
	f.Calls = append(f.Calls, "register")
	f.LastRegister = r
	return f.RegisterErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.Calls = append(f.Calls, "logout")
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Refresh(context.Context) (string, error) {
	f.Calls = append(f.Calls, "refresh")
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeClient) Profile(context.Context) (*models.Profile, error) {
	f.Calls = append(f.Calls, "profile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) DashboardStats(context.Context) (models.DashboardStats, error) {
	f.Calls = append(f.Calls, "stats")
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) ListGoals(_ context.Context, p models.ListParams) (*models.GoalPage, error) {
	f.Calls = append(f.Calls, "list")
	f.LastList = p
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateGoal(_ context.Context, g models.NewGoal) (*models.Goal, error) {
	f.Calls = append(f.Calls, "create")
	f.LastCreate = g
	return f.GoalRet, f.GoalErr
}

func (f *fakeClient) GetGoal(_ context.Context, id string) (*models.Goal, error) {
	f.Calls = append(f.Calls, "get")
	f.LastID = id
	return f.GoalRet, f.GoalErr
}

func (f *fakeClient) UpdateGoal(_ context.Context, id string, u models.GoalUpdate) (*models.Goal, error) {
	f.Calls = append(f.Calls, "update")
	f.LastID, f.LastUpdate = id, u
	return f.GoalRet, f.GoalErr
}

func (f *fakeClient) ToggleGoal(_ context.Context, id string) (*models.Goal, error) {
	f.Calls = append(f.Calls, "toggle")
	f.LastID = id
	return f.GoalRet, f.GoalErr
}

func (f *fakeClient) DeleteGoal(_ context.Context, id string) error {
	f.Calls = append(f.Calls, "delete")
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.Calls = append(f.Calls, "ping")
	return f.PingErr
}

type staticTokens struct {
	tok string
	err error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.tok, s.err }
