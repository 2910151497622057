package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/essaehaan/Profile/internal/client/client"
	"github.com/essaehaan/Profile/internal/client/config"
	"github.com/essaehaan/Profile/internal/client/models"
	"github.com/essaehaan/Profile/internal/client/purchase"
	"github.com/essaehaan/Profile/internal/client/services"
	"github.com/essaehaan/Profile/internal/client/session"
	"github.com/essaehaan/Profile/internal/logging"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	courses services.CourseService
	logger  logging.Logger
	db      *sql.DB

	// session is refreshed only when authentication changes.
	session session.Context

	reader *bufio.Reader
	out    io.Writer

	wizardOpts []purchase.Option
}

// NewApp opens the local database and wires the backend client and
// services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewTokenStore(db)
	resolver := session.NewResolver(store, logger)
	api := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithTokenSource(store),
		client.WithLogger(logger),
		client.WithUnauthorizedHandler(func(ctx context.Context) {
			if err := store.Clear(ctx); err != nil {
				logger.Warn(ctx, "credential clear failed", "error", err)
			}
		}),
	)

	logger.Debug(ctx, "backend client ready", "api", api.BaseURL(), "db", c.DatabasePath)

	a := newApp(c,
		services.NewAuthService(api, store, resolver, logger),
		services.NewCourseService(api, logger),
		logger, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, auth services.AuthService, courses services.CourseService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		config:  c,
		auth:    auth,
		courses: courses,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		wizardOpts: []purchase.Option{
			purchase.WithAutoCloseDelay(c.AutoCloseDelay),
			purchase.WithProcessor(purchase.SimulatedProcessor{Delay: c.ConfirmDelay}),
			purchase.WithLogger(logger),
		},
	}
}

// Run restores the previous session and blocks in the REPL until the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.refreshSession(ctx)
	a.println("Welcome to the academy client (type 'help' for commands)")
	if a.session.Authenticated() {
		a.println("Signed in as", a.session.User.Name)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// refreshSession takes a new session snapshot. Call it after login, logout
// or a rejected credential.
func (a *App) refreshSession(ctx context.Context) {
	a.session = a.auth.Session(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) status() string {
	if !a.session.Authenticated() {
		return "guest"
	}
	return fmt.Sprintf("%s %s", a.session.User.Name, a.session.Role())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) newWizard(c models.Course) *purchase.Wizard {
	return purchase.New(c, a.wizardOpts...)
}
