package forms

import (
	"context"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

type fakeAuth struct {
	Ret   *models.LoginResult
	Err   error
	calls int

	lastEmail    string
	lastPassword []byte

	// hook runs inside Login, before it returns
	hook func()
}

func (f *fakeAuth) Login(_ context.Context, email string, pw []byte) (*models.LoginResult, error) {
	f.calls++
	f.lastEmail = email
	f.lastPassword = append([]byte(nil), pw...)
	if f.hook != nil {
		f.hook()
	}
	return f.Ret, f.Err
}

type fakeSession struct {
	Err       error
	calls     int
	lastToken string
	lastUser  *models.User
}

func (f *fakeSession) Establish(_ context.Context, tok string, u *models.User) error {
	f.calls++
	f.lastToken, f.lastUser = tok, u
	return f.Err
}

type fakeNav struct {
	paths []string
}

func (f *fakeNav) Go(p string) router.Location {
	f.paths = append(f.paths, p)
	return router.Location{Path: p}
}

type fakeRegistrar struct {
	Err   error
	calls int
	last  models.Registration
}

func (f *fakeRegistrar) Register(_ context.Context, r models.Registration) error {
	f.calls++
	f.last = r
	return f.Err
}

type fakeCreator struct {
	Err   error
	calls int
	last  models.NewGoal
}

func (f *fakeCreator) Create(_ context.Context, g models.NewGoal) (*models.Goal, error) {
	f.calls++
	f.last = g
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Goal{ID: "1", Title: g.Title}, nil
}

type fakeLister struct {
	Ret   *models.GoalPage
	Err   error
	calls int
	last  models.ListParams
}

func (f *fakeLister) List(_ context.Context, p models.ListParams) (*models.GoalPage, error) {
	f.calls++
	f.last = p
	return f.Ret, f.Err
}

type staticTokens struct {
	tok string
	err error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.tok, s.err }
