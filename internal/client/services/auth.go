// Package services contains application services for the GoalKeeper client.
// This file defines the authentication service: login, registration, logout,
// token refresh, the profile lookup and the liveness check.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/session"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// AuthService defines authentication operations for the shell.
//
// Contract:
//   - Login: check credentials against the server; the caller decides whether
//     to establish the returned session.
//   - Register: create an account on the server.
//   - Logout: tell the server, then drop the local session regardless.
//   - Refresh: swap the stored token for a new one, keeping the user.
//   - Profile, Ping: read-only calls.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.LoginResult, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, error)
	Ping(ctx context.Context) error
}

// Session is the part of the session manager the auth service mutates.
// *session.Manager satisfies it.
type Session interface {
	Establish(ctx context.Context, token string, user *models.User) error
	Invalidate(ctx context.Context) error
	Store() *session.Store
}

type authService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

func NewAuthService(c client.Client, s Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: s, log: log.With("service", "auth")}
}

// Login wipes password once the request has been sent.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.LoginResult, error) {
	defer common.WipeByteArray(password)

	res, err := a.client.Login(ctx, models.LoginCredentials{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	return a.client.Register(ctx, reg)
}

// Logout always clears the local session; a failed server call is only logged.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	return a.session.Invalidate(ctx)
}

func (a *authService) Refresh(ctx context.Context) error {
	tok, err := a.client.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	return a.session.Establish(ctx, tok, a.session.Store().Get().User)
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	return a.client.Profile(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
