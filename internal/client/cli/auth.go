package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/services"
	"github.com/essaehaan/Profile/internal/client/validation"
	"github.com/essaehaan/Profile/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	return a.loginFrom(ctx, "")
}

// loginFrom asks for credentials and, on success, opens the view chosen by
// guard.AfterLogin for from.
func (a *App) loginFrom(ctx context.Context, from string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sc, err := a.auth.Login(ctx, validation.LoginForm{Email: email, Password: string(password)})
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.println("Login failed: invalid email or password")
		return err
	case errors.Is(err, services.ErrSessionRejected):
		a.println("Login failed: the server issued an unusable session")
		a.refreshSession(ctx)
		return err
	case err != nil:
		return a.report(ctx, err, guard.PathLogin)
	}

	a.session = sc
	a.println("Login successful. Welcome,", sc.User.Name)
	return a.open(ctx, guard.AfterLogin(sc, from))
}

func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := validation.SignupForm{Name: name, Email: email, Password: string(password)}
	if err := a.auth.Signup(ctx, form); err != nil {
		return a.report(ctx, err, guard.PathSignup)
	}
	a.println("Account created. Please login")
	return a.loginFrom(ctx, "")
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, validation.ForgotForm{Email: email}); err != nil {
		return a.report(ctx, err, guard.PathForgotPassword)
	}
	a.println("If an account exists for this email, a reset link has been sent.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, token string) error {
	var err error
	if token == "" {
		if token, err = GetSimpleText(a.reader, "Enter reset token", a.out); err != nil {
			return err
		}
	}
	password, err := GetPassword(a.reader, "Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := GetPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := validation.ResetForm{Token: token, Password: string(password), Confirm: string(confirm)}
	if err := a.auth.ResetPassword(ctx, form); err != nil {
		return a.report(ctx, err, guard.PathResetPassword)
	}
	a.println("Password has been reset. You can now login.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err, guard.PathHome)
	}
	a.refreshSession(ctx)
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.session.Authenticated() {
		a.println("Not logged in")
		return nil
	}
	u := a.session.User
	role := a.session.Role().String()
	if u.RoleClaim != "" && u.RoleClaim != role {
		role = fmt.Sprintf("%s, role claim %q", role, u.RoleClaim)
	}
	a.printf("%s <%s> (%s)\n", u.Name, u.Email, role)
	if at, ok := a.auth.SignedInAt(ctx); ok {
		a.println("Signed in at", at.Local().Format(time.DateTime))
	}
	return nil
}
