package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Courses(ctx context.Context) error
	Course(ctx context.Context, id string) error
	Buy(ctx context.Context, id string) error
	Admin(ctx context.Context) error
	CreateCourse(ctx context.Context) error
	EditCourse(ctx context.Context, id string) error
	DeleteCourse(ctx context.Context, id string) error
}

// runREPL reads commands line by line and dispatches them to a. The loop
// exits on scanner EOF, on "exit" or "quit", or when ctx is done.
//
//	help              show available commands
//	login | signup    authenticate or create an account
//	forgot            request a password reset email
//	reset [token]     set a new password with a reset token
//	logout, whoami
//	courses           list courses
//	course <id>       show one course
//	buy <id>          purchase a course
//	admin             admin dashboard
//	create            add a course (admin)
//	edit <id>         change a course (admin)
//	delete <id>       remove a course (admin)
//	exit | quit
//
// Handlers report their own errors to the user, so errors are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("academy (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(fn func(context.Context, string) error) {
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<id>")
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			printlnFn(helpText(a))
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			_ = a.ResetPassword(ctx, token)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "courses":
			_ = a.Courses(ctx)
		case "course":
			withID(a.Course)
		case "buy":
			withID(a.Buy)
		case "admin":
			_ = a.Admin(ctx)
		case "create":
			_ = a.CreateCourse(ctx)
		case "edit":
			withID(a.EditCourse)
		case "delete":
			withID(a.DeleteCourse)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: courses, course <id>, buy <id>, admin, create, edit <id>, delete <id>, whoami, logout, exit"
	case a.isLoggedIn():
		return "Available commands: courses, course <id>, buy <id>, whoami, logout, exit"
	default:
		return "Available commands: login, signup, forgot, reset [token], courses, exit"
	}
}
