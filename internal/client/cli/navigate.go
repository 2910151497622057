package cli

import (
	"context"
	"net/url"
	"strings"

	"github.com/essaehaan/Profile/internal/client/guard"
	"github.com/essaehaan/Profile/internal/client/models"
)

// open shows the view at path, or follows the guard's redirect.
func (a *App) open(ctx context.Context, path string) error {
	d := guard.Check(a.session, path)
	if !d.Allowed {
		return a.redirect(ctx, d)
	}
	return a.render(ctx, path)
}

// authorize reports whether the session may act on target. When it may not,
// the redirect is followed and false is returned.
func (a *App) authorize(ctx context.Context, target string) bool {
	d := guard.Check(a.session, target)
	if d.Allowed {
		return true
	}
	_ = a.redirect(ctx, d)
	return false
}

func (a *App) redirect(ctx context.Context, d guard.Decision) error {
	a.println(d.Notice)
	if from, _, ok := guard.ParseLoginURL(d.To); ok {
		return a.loginFrom(ctx, from)
	}
	return a.open(ctx, d.To)
}

func (a *App) render(ctx context.Context, path string) error {
	switch {
	case path == guard.PathCourses:
		return a.listCourses(ctx)
	case strings.HasPrefix(path, "/course/"):
		id, err := url.PathUnescape(strings.TrimPrefix(path, "/course/"))
		if err != nil {
			id = strings.TrimPrefix(path, "/course/")
		}
		return a.showCourse(ctx, models.ID(id))
	case path == guard.PathAdmin:
		return a.dashboard(ctx)
	default:
		a.println(helpText(a))
		return nil
	}
}
