package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/config"
	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/purchase"
	"github.com/essaehaan/Profile/internal/client/services"
	"github.com/essaehaan/Profile/internal/client/session"
	"github.com/essaehaan/Profile/internal/client/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userSession  = session.NewContext(session.User{ID: "1", Email: "u@example.com", Name: "Uma", Role: session.RoleUser})
	adminSession = session.NewContext(session.User{ID: "2", Email: "a@example.com", Name: "Ada", Role: session.RoleAdmin})
)

type fakeAuth struct {
	current  session.Context
	onLogin  session.Context
	loginErr error
	logins   []validation.LoginForm
	logouts  int
	signedIn time.Time
}

func (f *fakeAuth) Login(_ context.Context, form validation.LoginForm) (session.Context, error) {
	f.logins = append(f.logins, form)
	if f.loginErr != nil {
		return session.Guest(), f.loginErr
	}
	f.current = f.onLogin
	return f.current, nil
}
func (f *fakeAuth) Signup(context.Context, validation.SignupForm) error { return nil }
func (f *fakeAuth) ForgotPassword(context.Context, validation.ForgotForm) error {
	return nil
}
func (f *fakeAuth) ResetPassword(_ context.Context, form validation.ResetForm) error {
	return validation.ValidateReset(form).Err()
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.current = session.Guest()
	return nil
}
func (f *fakeAuth) Session(context.Context) session.Context { return f.current }
func (f *fakeAuth) SignedInAt(context.Context) (time.Time, bool) {
	return f.signedIn, !f.signedIn.IsZero()
}

type fakeCourses struct {
	list      []models.Course
	listErr   error
	created   []validation.CourseDraft
	createErr error
	updated   []models.ID
	deleted   []models.ID
}

func (f *fakeCourses) List(context.Context) ([]models.Course, error) { return f.list, f.listErr }
func (f *fakeCourses) Get(_ context.Context, id models.ID) (*models.Course, error) {
	for _, c := range f.list {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, &client.RequestFailedError{StatusCode: 404, Message: "Course not found"}
}
func (f *fakeCourses) Create(_ context.Context, d validation.CourseDraft) (*models.Course, error) {
	f.created = append(f.created, d)
	if f.createErr != nil {
		var partial *services.PartialUpdateError
		if errors.As(f.createErr, &partial) {
			return &models.Course{ID: "99", Title: d.Title}, f.createErr
		}
		return nil, f.createErr
	}
	return &models.Course{ID: "99", Title: d.Title}, nil
}
func (f *fakeCourses) Update(_ context.Context, id models.ID, d validation.CourseDraft) (*models.Course, error) {
	f.updated = append(f.updated, id)
	return &models.Course{ID: id, Title: d.Title}, nil
}
func (f *fakeCourses) Delete(_ context.Context, id models.ID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

// newTestApp builds an App reading input from lines with passwords read as
// plain lines.
func newTestApp(t *testing.T, auth *fakeAuth, courses *fakeCourses, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	a := newApp(testConfig(), auth, courses, nil, in, &out)
	a.refreshSession(context.Background())
	return a, &out
}

func catalogue() *fakeCourses {
	return &fakeCourses{list: []models.Course{
		{ID: "1", Title: "Go Basics", Description: "Intro", Price: 19.99},
		{ID: "2", Title: "Advanced Go", Description: "Deep dive", Price: 30},
	}}
}

func TestGuestListsCoursesWithoutLogin(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(t, auth, catalogue())

	require.NoError(t, a.Courses(context.Background()))

	s := out.String()
	assert.NotContains(t, s, "Please login to continue")
	assert.Contains(t, s, "[1] Go Basics - $19.99")
	assert.Empty(t, auth.logins)
	assert.Equal(t, "guest", a.status())
}

func TestGuestOpeningCourseLogsInThenShowsIt(t *testing.T) {
	auth := &fakeAuth{onLogin: userSession}
	a, out := newTestApp(t, auth, catalogue(), "u@example.com", "pw")

	require.NoError(t, a.Course(context.Background(), "1"))

	s := out.String()
	assert.Contains(t, s, "Please login to continue")
	assert.Contains(t, s, "Login successful. Welcome, Uma")
	assert.Contains(t, s, "Go Basics")
	require.Len(t, auth.logins, 1)
	assert.Equal(t, validation.LoginForm{Email: "u@example.com", Password: "pw"}, auth.logins[0])
	assert.Equal(t, "Uma user", a.status())
}

func TestGuestOnAdminLandsOnDashboardAsAdmin(t *testing.T) {
	auth := &fakeAuth{onLogin: adminSession}
	a, out := newTestApp(t, auth, catalogue(), "a@example.com", "pw")

	require.NoError(t, a.Admin(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Please login to access admin dashboard")
	assert.Contains(t, s, "Total courses: 2")
	assert.Contains(t, s, "Revenue: $49.99")
}

func TestUserOnAdminIsSentToCourses(t *testing.T) {
	auth := &fakeAuth{current: userSession}
	a, out := newTestApp(t, auth, catalogue())

	require.NoError(t, a.Admin(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Access denied. Admin privileges required.")
	assert.Contains(t, s, "[2] Advanced Go - $30.00")
	assert.NotContains(t, s, "Admin dashboard")
}

func TestUserAfterLoginReturnsToCourse(t *testing.T) {
	auth := &fakeAuth{onLogin: userSession}
	a, out := newTestApp(t, auth, catalogue(), "u@example.com", "pw")

	require.NoError(t, a.Course(context.Background(), "2"))

	assert.Contains(t, out.String(), "Advanced Go\nPrice: $30.00\nDeep dive")
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	auth := &fakeAuth{current: userSession}
	courses := &fakeCourses{listErr: client.ErrUnauthorized}
	a, out := newTestApp(t, auth, courses)

	err := a.Courses(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	s := out.String()
	assert.Contains(t, s, MsgSessionExpired)
	assert.Contains(t, s, "Enter email")
	assert.Equal(t, 1, auth.logouts)
	assert.False(t, a.isLoggedIn())
}

func TestLoginFailureShowsMessage(t *testing.T) {
	auth := &fakeAuth{loginErr: client.ErrUnauthorized}
	a, out := newTestApp(t, auth, catalogue(), "u@example.com", "bad")

	assert.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Login failed: invalid email or password")
	assert.Zero(t, auth.logouts)

	auth.loginErr = &client.RequestFailedError{StatusCode: 400, Message: "Invalid credentials"}
	a, out = newTestApp(t, auth, catalogue(), "u@example.com", "bad")
	assert.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Error: Invalid credentials")
}

func TestCreateCourse(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) { return []byte("\x89PNG\r\n\x1a\n"), nil }

	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses,
		"Rust", "Systems", "12.5", "/tmp/cover.png")

	require.NoError(t, a.CreateCourse(context.Background()))
	require.Len(t, courses.created, 1)
	d := courses.created[0]
	assert.Equal(t, "12.5", d.Price)
	require.NotNil(t, d.Image)
	assert.Equal(t, "image/png", d.Image.ContentType)
	assert.Contains(t, out.String(), "Course created: [99] Rust")
}

func TestCreateCourse_RejectsNonImageWhenPicked(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) { return []byte("plain notes"), nil }

	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses,
		"Rust", "Systems", "12.5", "/tmp/notes.txt", "")

	require.NoError(t, a.CreateCourse(context.Background()))
	assert.Contains(t, out.String(), validation.MsgInvalidImage)
	assert.Equal(t, 2, strings.Count(out.String(), "Image file path (optional)"))
	require.Len(t, courses.created, 1)
	assert.Nil(t, courses.created[0].Image)
}

func TestCreateCourse_InvalidDraftNotSubmitted(t *testing.T) {
	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses, " ", "Systems", "-3", "")

	err := a.CreateCourse(context.Background())
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, courses.created)
	assert.Contains(t, out.String(), validation.MsgTitleRequired)
	assert.Contains(t, out.String(), validation.MsgInvalidPrice)
}

func TestCreateCourse_PartialFailure(t *testing.T) {
	courses := catalogue()
	courses.createErr = &services.PartialUpdateError{CourseID: "99",
		Err: &client.RequestFailedError{StatusCode: 500, Message: "Failed to upload image"}}
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses, "Rust", "Systems", "1", "")

	assert.Error(t, a.CreateCourse(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Course created: [99] Rust")
	assert.Contains(t, s, "image upload failed: Failed to upload image")
}

func TestCreateCourse_UserForbidden(t *testing.T) {
	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: userSession}, courses)

	require.NoError(t, a.CreateCourse(context.Background()))
	assert.Empty(t, courses.created)
	assert.Contains(t, out.String(), "Access denied. Admin privileges required.")
}

func TestEditCourseKeepsDefaults(t *testing.T) {
	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses, "", "", "", "")

	require.NoError(t, a.EditCourse(context.Background(), "1"))
	assert.Equal(t, []models.ID{"1"}, courses.updated)
	assert.Contains(t, out.String(), "Price [19.99]")
	assert.Contains(t, out.String(), "Course updated: [1] Go Basics")
}

func TestDeleteCourse(t *testing.T) {
	courses := catalogue()
	a, out := newTestApp(t, &fakeAuth{current: adminSession}, courses, "n", "y")

	require.NoError(t, a.DeleteCourse(context.Background(), "2"))
	assert.Contains(t, out.String(), "Cancelled")
	require.NoError(t, a.DeleteCourse(context.Background(), "2"))
	assert.Equal(t, []models.ID{"2"}, courses.deleted)
}

func TestBuyWalksWizard(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) { return []byte("%PDF-1.4"), nil }

	a, out := newTestApp(t, &fakeAuth{current: userSession}, catalogue(),
		"",         // no method chosen
		"2",        // EasyPaisa
		"TX-9",     // transaction id
		"slip.pdf", // evidence
		"confirm",
	)
	a.wizardOpts = []purchase.Option{
		purchase.WithProcessor(purchase.ProcessorFunc(func(context.Context, purchase.Order) error { return nil })),
		purchase.WithAutoCloseDelay(time.Millisecond),
	}

	require.NoError(t, a.Buy(context.Background(), "1"))

	s := out.String()
	assert.Contains(t, s, purchase.MsgSelectMethod)
	assert.Contains(t, s, "Send $19.99 to EasyPaisa account 03159417898")
	assert.Contains(t, s, "Transaction ID: TX-9")
	assert.Contains(t, s, "Purchase submitted!")
	for _, h := range []string{"Step 1 of 4:", "Step 2 of 4:", "Step 3 of 4:", "Step 4 of 4:"} {
		assert.Contains(t, s, h)
	}
	assert.NotContains(t, s, "of 3")
}

func TestBuyCancel(t *testing.T) {
	a, out := newTestApp(t, &fakeAuth{current: userSession}, catalogue(), "1", "cancel")

	require.NoError(t, a.Buy(context.Background(), "1"))
	assert.Contains(t, out.String(), "Purchase cancelled")
}

func TestResetPasswordMismatch(t *testing.T) {
	a, out := newTestApp(t, &fakeAuth{}, catalogue(), "a", "b")

	assert.Error(t, a.ResetPassword(context.Background(), "tok"))
	assert.Contains(t, out.String(), validation.MsgPasswordMismatch)
}

func TestWhoAmIAndLogout(t *testing.T) {
	signedIn := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	auth := &fakeAuth{current: adminSession, signedIn: signedIn}
	a, out := newTestApp(t, auth, catalogue())

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Ada <a@example.com> (admin)")
	assert.Contains(t, out.String(), "Signed in at 2026-03-01 09:30:00")

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, "guest", a.status())
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")
}

func TestWhoAmIShowsUnmappedRoleClaim(t *testing.T) {
	sc := session.NewContext(session.User{ID: "3", Email: "s@example.com", Name: "Sam",
		Role: session.RoleUser, RoleClaim: "student"})
	a, out := newTestApp(t, &fakeAuth{current: sc}, catalogue())

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), `Sam <s@example.com> (user, role claim "student")`)
	assert.NotContains(t, out.String(), "Signed in at")
}
