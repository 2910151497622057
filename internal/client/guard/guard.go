// Package guard decides whether a session may open a route and where to
// send it otherwise.
package guard

import (
	"net/url"
	"strings"

	"github.com/essaehaan/Profile/internal/client/session"
)

const (
	PathHome           = "/"
	PathCourses        = "/courses"
	PathCourse         = "/course/:id"
	PathAdmin          = "/admin"
	PathLogin          = "/login"
	PathSignup         = "/signup"
	PathForgotPassword = "/forgot-password"
	PathResetPassword  = "/reset-password"
)

const (
	NoticeLogin      = "Please login to continue"
	NoticeAdminLogin = "Please login to access admin dashboard"
	NoticeForbidden  = "Access denied. Admin privileges required."
)

// Requirement is the access level a route demands.
type Requirement int

const (
	Public Requirement = iota
	Authenticated
	Admin
)

// Outcome of an authorization decision.
type Outcome int

const (
	Allow Outcome = iota
	NeedLogin
	Forbidden
)

// Authorize is the single authorization rule: guests must log in for any
// non-public route, and only admins pass Admin routes.
func Authorize(role session.Role, req Requirement) Outcome {
	switch {
	case req == Public:
		return Allow
	case role == session.RoleGuest:
		return NeedLogin
	case req == Admin && role != session.RoleAdmin:
		return Forbidden
	default:
		return Allow
	}
}

// RequirementFor returns the access level of path. Unknown paths are public.
func RequirementFor(path string) Requirement {
	p := strings.TrimSuffix(pathOnly(path), "/")
	switch {
	case p == PathAdmin || strings.HasPrefix(p, PathAdmin+"/"):
		return Admin
	case strings.HasPrefix(p, "/course/"):
		return Authenticated
	default:
		return Public
	}
}

// Decision is the result of Check. When Allowed is false, To is where the
// user goes instead and Notice explains why.
type Decision struct {
	Allowed bool
	To      string
	Notice  string
}

// Check applies Authorize to target for the given session.
func Check(sc session.Context, target string) Decision {
	req := RequirementFor(target)
	switch Authorize(sc.Role(), req) {
	case NeedLogin:
		notice := NoticeLogin
		if req == Admin {
			notice = NoticeAdminLogin
		}
		return Decision{To: LoginURL(target, notice), Notice: notice}
	case Forbidden:
		return Decision{To: PathCourses, Notice: NoticeForbidden}
	default:
		return Decision{Allowed: true, To: target}
	}
}

// AfterLogin picks the destination once a login succeeds. Admins always land
// on the dashboard; everyone else returns to where they were going.
func AfterLogin(sc session.Context, from string) string {
	if sc.IsAdmin() {
		return PathAdmin
	}
	if from == "" {
		return PathCourses
	}
	if Authorize(sc.Role(), RequirementFor(from)) != Allow || isAuthPage(from) {
		return PathCourses
	}
	return from
}

func isAuthPage(path string) bool {
	switch strings.TrimSuffix(pathOnly(path), "/") {
	case PathLogin, PathSignup, PathForgotPassword, PathResetPassword:
		return true
	}
	return false
}

// LoginURL builds the login route carrying the original target and a notice.
func LoginURL(from, notice string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if notice != "" {
		q.Set("notice", notice)
	}
	if len(q) == 0 {
		return PathLogin
	}
	return PathLogin + "?" + q.Encode()
}

// ParseLoginURL extracts the target and notice from a login route. ok is
// false when raw is not a login route.
func ParseLoginURL(raw string) (from, notice string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Path != PathLogin {
		return "", "", false
	}
	q := u.Query()
	return q.Get("from"), q.Get("notice"), true
}

// CoursePath returns the detail route of a course.
func CoursePath(id string) string {
	return "/course/" + url.PathEscape(id)
}

func pathOnly(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return PathHome
	}
	return p
}
