package services

import (
	"context"
	"fmt"
	"time"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/session"
	"github.com/essaehaan/Profile/internal/client/validation"
	"github.com/essaehaan/Profile/internal/logging"
)

// AuthService defines authentication operations for the REPL.
//
// Contract:
//   - Login: authenticate, persist the credential, return the new session.
//   - Signup, ForgotPassword, ResetPassword: validate locally, then call the
//     backend; none of them signs the user in.
//   - Logout: forget the stored credential.
//   - Session: the current session snapshot.
//   - SignedInAt: when the stored credential was saved; false when unknown.
//
// Forms that fail local validation return *validation.Error without any
// network call.
type AuthService interface {
	Login(ctx context.Context, form validation.LoginForm) (session.Context, error)
	Signup(ctx context.Context, form validation.SignupForm) error
	ForgotPassword(ctx context.Context, form validation.ForgotForm) error
	ResetPassword(ctx context.Context, form validation.ResetForm) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) session.Context
	SignedInAt(ctx context.Context) (time.Time, bool)
}

// TokenWriter is the credential storage the service maintains.
type TokenWriter interface {
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	SavedAt(ctx context.Context) (time.Time, bool, error)
}

type authService struct {
	api      client.AuthAPI
	tokens   TokenWriter
	resolver *session.Resolver
	logger   logging.Logger
}

// NewAuthService wires the auth endpoints to credential storage. resolver
// must read the same storage tokens writes to.
func NewAuthService(api client.AuthAPI, tokens TokenWriter, resolver *session.Resolver, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{api: api, tokens: tokens, resolver: resolver, logger: logger}
}

func (a *authService) Login(ctx context.Context, form validation.LoginForm) (session.Context, error) {
	if err := validation.ValidateLogin(form).Err(); err != nil {
		return session.Guest(), err
	}

	token, err := a.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		return session.Guest(), err
	}
	if err := a.tokens.Set(ctx, token); err != nil {
		return session.Guest(), fmt.Errorf("store credential: %w", err)
	}

	sc := a.resolver.Snapshot(ctx)
	if !sc.Authenticated() {
		return sc, ErrSessionRejected
	}
	a.logger.Info(ctx, "logged in", "user", sc.User.ID, "role", sc.Role())
	return sc, nil
}

func (a *authService) Signup(ctx context.Context, form validation.SignupForm) error {
	if err := validation.ValidateSignup(form).Err(); err != nil {
		return err
	}
	return a.api.Signup(ctx, form.Name, form.Email, form.Password)
}

func (a *authService) ForgotPassword(ctx context.Context, form validation.ForgotForm) error {
	if err := validation.ValidateForgot(form).Err(); err != nil {
		return err
	}
	return a.api.ForgotPassword(ctx, form.Email)
}

func (a *authService) ResetPassword(ctx context.Context, form validation.ResetForm) error {
	if err := validation.ValidateReset(form).Err(); err != nil {
		return err
	}
	return a.api.ResetPassword(ctx, form.Token, form.Password)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) Session(ctx context.Context) session.Context {
	return a.resolver.Snapshot(ctx)
}

func (a *authService) SignedInAt(ctx context.Context) (time.Time, bool) {
	t, ok, err := a.tokens.SavedAt(ctx)
	if err != nil {
		a.logger.Warn(ctx, "read sign-in time", "error", err)
		return time.Time{}, false
	}
	return t, ok
}
