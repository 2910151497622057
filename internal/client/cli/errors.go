package cli

import (
	"context"
	"errors"
	"sort"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/services"
	"github.com/essaehaan/Profile/internal/client/validation"
)

const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgUnavailable    = "Server unavailable, please try again later"
	MsgTimeout        = "Request timed out"
)

// report shows err to the user and returns it. from is the view the failed
// action belongs to; a rejected credential sends the user to log in and
// back there.
func (a *App) report(ctx context.Context, err error, from string) error {
	if err == nil {
		return nil
	}
	a.logger.Debug(ctx, "command failed", "view", from, "error", err)

	var (
		verr    *validation.Error
		failed  *client.RequestFailedError
		partial *services.PartialUpdateError
	)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.expire(ctx, from)
	case errors.As(err, &partial):
		a.println("The course was saved, but the image upload failed:", userMessage(partial.Err))
	case errors.As(err, &verr):
		a.printFieldErrors(verr.Fields)
	case errors.As(err, &failed):
		a.println("Error:", failed.Message)
	default:
		a.println("Error:", userMessage(err))
	}
	return err
}

// expire forgets the rejected credential and starts a login that returns
// to from.
func (a *App) expire(ctx context.Context, from string) {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout after rejected credential failed", "error", err)
	}
	a.refreshSession(ctx)
	_ = a.redirect(ctx, guard.Decision{To: guard.LoginURL(from, MsgSessionExpired), Notice: MsgSessionExpired})
}

func (a *App) printFieldErrors(fields validation.Errors) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.println(" -", fields[k])
	}
}

func userMessage(err error) string {
	var failed *client.RequestFailedError
	switch {
	case errors.As(err, &failed):
		return failed.Message
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	default:
		return err.Error()
	}
}
