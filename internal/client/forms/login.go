package forms

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

const loginFallback = "Login failed. Please try again."

// Authenticator checks credentials. services.AuthService satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email string, password []byte) (*models.LoginResult, error)
}

// SessionEstablisher stores a successful login. *session.Manager satisfies it.
type SessionEstablisher interface {
	Establish(ctx context.Context, token string, user *models.User) error
}

type LoginForm struct {
	Email    string
	Password []byte

	auth Authenticator
	sess SessionEstablisher
	nav  Navigator
	status
}

func NewLoginForm(auth Authenticator, sess SessionEstablisher, nav Navigator) *LoginForm {
	return &LoginForm{auth: auth, sess: sess, nav: nav}
}

func (f *LoginForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !validEmail(email):
		errs["email"] = "Enter a valid email address"
	}
	if len(f.Password) == 0 {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates, logs in and, on success, establishes the session and
// moves to the dashboard. If ctx is done by the time the server answers the
// result is dropped.
func (f *LoginForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	if errs := f.Validate(); errs != nil {
		f.fail(errs.Error())
		return errs
	}

	pw := append([]byte(nil), f.Password...)
	res, err := f.auth.Login(ctx, strings.TrimSpace(f.Email), pw)
	if err != nil {
		f.fail(ErrorMessage(err, loginFallback))
		return err
	}
	if abandoned(ctx) {
		return ctx.Err()
	}

	if err := f.sess.Establish(ctx, res.Token, res.User); err != nil {
		f.fail(ErrorMessage(err, loginFallback))
		return err
	}

	clear(f.Password)
	f.Password = nil
	f.nav.Go(router.PathDashboard)
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}
