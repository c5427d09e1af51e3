package forms

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

const (
	msgFillAll          = "Please fill all fields."
	msgPasswordMismatch = "Passwords do not match."
	registerFallback    = "Registration failed. Please try again."
	registerSuccess     = "Registration successful. Please log in."
)

// Registrar creates accounts. services.AuthService satisfies it.
type Registrar interface {
	Register(ctx context.Context, reg models.Registration) error
}

type RegisterForm struct {
	Username        string
	Email           string
	Mobile          string
	Password        string
	ConfirmPassword string

	reg Registrar
	nav Navigator
	status
}

func NewRegisterForm(reg Registrar, nav Navigator) *RegisterForm {
	return &RegisterForm{reg: reg, nav: nav}
}

func (f *RegisterForm) Validate() ValidationErrors {
	fields := map[string]string{
		"username":         f.Username,
		"email":            f.Email,
		"mobile":           f.Mobile,
		"password":         f.Password,
		"confirm_password": f.ConfirmPassword,
	}
	errs := ValidationErrors{}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			errs[name] = msgFillAll
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if f.Password != f.ConfirmPassword {
		return ValidationErrors{"confirm_password": msgPasswordMismatch}
	}
	return nil
}

func (f *RegisterForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	if errs := f.Validate(); errs != nil {
		msg := msgFillAll
		if errs["confirm_password"] == msgPasswordMismatch {
			msg = msgPasswordMismatch
		}
		f.fail(msg)
		return errs
	}

	err := f.reg.Register(ctx, models.Registration{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
		Mobile:   strings.TrimSpace(f.Mobile),
		Password: f.Password,
	})
	if err != nil {
		f.fail(ErrorMessage(err, registerFallback))
		return err
	}

	f.Username, f.Email, f.Mobile, f.Password, f.ConfirmPassword = "", "", "", "", ""
	f.succeed(registerSuccess)
	f.nav.Go(router.PathLogin)
	return nil
}
