package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/goalkeeper/internal/client/forms"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login runs the login form: it prompts for email and password and, on
// success, shows the dashboard. Failures are printed and returned.
func (a *App) Login(ctx context.Context) error {
	f := forms.NewLoginForm(a.authService, a.session, a.nav)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f.Email, f.Password = email, password
	if err := f.Submit(ctx); err != nil {
		a.printError(f.Message())
		return err
	}

	a.printSuccess("Login successful")
	return a.render(ctx, a.nav.Current())
}

// LoginOnce restores the saved session first, for use outside the shell.
func (a *App) LoginOnce(ctx context.Context) error {
	a.session.Restore(ctx)
	return a.Login(ctx)
}

// Register runs the registration form and points the user to login.
func (a *App) Register(ctx context.Context) error {
	f := forms.NewRegisterForm(a.authService, a.nav)

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Username", &f.Username},
		{"Email", &f.Email},
		{"Mobile", &f.Mobile},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	f.Password = string(pw)
	common.WipeByteArray(pw)

	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	f.ConfirmPassword = string(confirm)
	common.WipeByteArray(confirm)

	if err := f.Submit(ctx); err != nil {
		a.printError(f.Message())
		return err
	}

	a.printSuccess(f.Success())
	a.println(hintStyle.Render("Type 'login' to sign in."))
	return nil
}

// Logout ends the session locally even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.printError("Logout failed: " + err.Error())
		return err
	}
	a.nav.Replace(router.PathLogin)
	a.println("Logged out.")
	return nil
}

// Refresh swaps the stored token for a fresh one.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printError("Not logged in.")
		return common.ErrorNoToken
	}
	if err := a.authService.Refresh(ctx); err != nil {
		a.printError(forms.ErrorMessage(err, "Token refresh failed."))
		return err
	}
	a.printSuccess("Token refreshed.")
	return nil
}

// Whoami prints the server-side profile of the current user.
func (a *App) Whoami(ctx context.Context) error {
	p, err := a.authService.Profile(ctx)
	if err != nil {
		a.printError(forms.ErrorMessage(err, "Failed to load profile."))
		return err
	}
	a.println(fmt.Sprintf("%s <%s>", p.Name, p.Email))
	if p.Mobile != "" {
		a.println("Mobile: " + p.Mobile)
	}
	if p.ID != "" {
		a.println("ID:     " + p.ID)
	}
	return nil
}

// Status prints the local session state. Token claims are decoded without
// verification and only for display.
func (a *App) Status(ctx context.Context) error {
	a.session.Restore(ctx)

	a.println("Session:  " + a.session.State().String())
	if u := a.session.Store().Get().User; u != nil {
		a.println(fmt.Sprintf("User:     %s (%s)", u.Name, u.ID))
	}
	a.println("API:      " + a.config.APIBaseURL)
	if m := a.currentMode(); m != "" {
		a.println("Server:   " + string(m))
	}

	tok, err := a.session.Token(ctx)
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	for _, line := range describeToken(tok, time.Now()) {
		a.println(line)
	}
	return nil
}

func describeToken(tok string, now time.Time) []string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return []string{"Token:    opaque"}
	}

	lines := []string{"Token:    JWT"}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		lines = append(lines, "Subject:  "+sub)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		lines = append(lines, "Issued:   "+iat.UTC().Format(time.RFC3339))
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return lines
	}
	line := "Expires:  " + exp.UTC().Format(time.RFC3339)
	if exp.Before(now) {
		line += " (expired)"
	}
	return append(lines, line)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *App) printError(msg string) {
	if msg == "" {
		return
	}
	a.println(errorStyle.Render(msg))
}

func (a *App) printSuccess(msg string) {
	if msg == "" {
		return
	}
	a.println(successStyle.Render(msg))
}

// errNotImplemented marks shell actions with no server counterpart yet.
var errNotImplemented = errors.New("not implemented")
