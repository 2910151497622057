package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Signup(context.Context) error         { return f.record("signup") }
func (f *fakeExec) ForgotPassword(context.Context) error { return f.record("forgot") }
func (f *fakeExec) ResetPassword(_ context.Context, token string) error {
	return f.record("reset " + token)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error  { return f.record("whoami") }
func (f *fakeExec) Courses(context.Context) error { return f.record("courses") }
func (f *fakeExec) Course(_ context.Context, id string) error {
	return f.record("course " + id)
}
func (f *fakeExec) Buy(_ context.Context, id string) error { return f.record("buy " + id) }
func (f *fakeExec) Admin(context.Context) error            { return f.record("admin") }
func (f *fakeExec) CreateCourse(context.Context) error     { return f.record("create") }
func (f *fakeExec) EditCourse(_ context.Context, id string) error {
	return f.record("edit " + id)
}
func (f *fakeExec) DeleteCourse(_ context.Context, id string) error {
	return f.record("delete " + id)
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := capturePrints(t)

	input := strings.Join([]string{
		"help",
		"login",
		"courses",
		"course 7",
		"course",
		"buy 7",
		"admin",
		"create",
		"edit 3",
		"delete 3",
		"reset tok",
		"whoami",
		"logout",
		"signup",
		"forgot",
		"",
		"foobar",
		"exit",
		"courses",
	}, "\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "courses", "course 7", "buy 7", "admin", "create", "edit 3", "delete 3",
		"reset tok", "whoami", "logout", "signup", "forgot",
	}, exec.calls)
	assert.Contains(t, *out, "Usage: course <id>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "academy (guest)> ")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrints(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("courses")))
	require.Equal(t, []string{"courses"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("courses\n")))
	assert.Len(t, exec.calls, 1)
}

func TestHelpText(t *testing.T) {
	assert.Contains(t, helpText(&fakeExec{}), "login")
	assert.NotContains(t, helpText(&fakeExec{loggedIn: true}), "create")
	assert.Contains(t, helpText(&fakeExec{loggedIn: true, admin: true}), "create")
}
