package session

import (
	"context"
	"time"

	"github.com/essaehaan/Profile/internal/logging"
)

// Store is the credential storage the resolver reads and prunes.
type Store interface {
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Resolver derives identity and role from the stored credential. It makes
// no network calls.
type Resolver struct {
	store  Store
	logger logging.Logger
	now    func() time.Time
}

type ResolverOption func(*Resolver)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

func NewResolver(store Store, logger logging.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = logging.Nop()
	}
	r := &Resolver{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) credential(ctx context.Context) string {
	token, err := r.store.Get(ctx)
	if err != nil {
		r.logger.Warn(ctx, "credential read failed", "error", err)
		return ""
	}
	return token
}

func (r *Resolver) discard(ctx context.Context, reason string) {
	r.logger.Info(ctx, "discarding stored credential", "reason", reason)
	if err := r.store.Clear(ctx); err != nil {
		r.logger.Warn(ctx, "credential clear failed", "error", err)
	}
}

// valid returns the claims of a present, decodable and unexpired
// credential. Undecodable or expired credentials are removed from storage.
func (r *Resolver) valid(ctx context.Context) (*Claims, bool) {
	token := r.credential(ctx)
	if token == "" {
		return nil, false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		r.logger.Debug(ctx, "credential decode failed", "error", err)
		r.discard(ctx, "malformed")
		return nil, false
	}
	if claims.Expired(r.now()) {
		r.discard(ctx, "expired")
		return nil, false
	}
	return claims, true
}

// IsAuthenticated reports whether a usable credential is stored.
func (r *Resolver) IsAuthenticated(ctx context.Context) bool {
	_, ok := r.valid(ctx)
	return ok
}

// CurrentUser decodes the stored credential. It does not look at expiry;
// use IsAuthenticated or Snapshot for that.
func (r *Resolver) CurrentUser(ctx context.Context) (*User, bool) {
	token := r.credential(ctx)
	if token == "" {
		return nil, false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		r.logger.Debug(ctx, "credential decode failed", "error", err)
		return nil, false
	}
	u := claims.User()
	return &u, true
}

// IsAdmin reports whether the stored identity carries the admin role.
func (r *Resolver) IsAdmin(ctx context.Context) bool {
	u, ok := r.CurrentUser(ctx)
	return ok && u.Role == RoleAdmin
}

// Snapshot returns the session as of now: the guest context unless a
// usable credential is stored.
func (r *Resolver) Snapshot(ctx context.Context) Context {
	claims, ok := r.valid(ctx)
	if !ok {
		return Guest()
	}
	return NewContext(claims.User())
}
