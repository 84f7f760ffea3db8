// Package guard decides whether navigation into a protected area may
// proceed. It reads only the session store: a token's presence gates
// authenticated routes, and the cached user profile gates superuser routes.
// Token validity is never checked here; an expired token is discovered by
// the first API call, which clears the session and forces a re-login.
package guard

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

// Decision is the outcome of a route guard check.
type Decision int

const (
	// Loading means the information needed to decide is not available yet.
	// Callers hold navigation (render nothing) until a retry resolves.
	Loading Decision = iota

	// Allowed means navigation may proceed.
	Allowed

	// Denied means the caller must redirect: to login for missing
	// credentials, to the main area for insufficient privilege.
	Denied
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Guard answers route access questions from the session store.
type Guard struct {
	store  session.Store
	logger zerolog.Logger
}

// New creates a guard over the given session store.
func New(store session.Store) *Guard {
	if store == nil {
		panic("guard: nil session store")
	}
	return &Guard{
		store:  store,
		logger: log.With().Str("component", "guard").Logger(),
	}
}

// Authenticated reports whether an authenticated route may be entered. The
// check is presence-only: any stored token passes.
func (g *Guard) Authenticated(ctx context.Context) (bool, error) {
	creds, err := g.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return creds.Token != "", nil
}

// RequireAuth returns Allowed when a token is stored and Denied otherwise.
// Store errors map to Denied: with no way to prove credentials, the safe
// answer is the login page.
func (g *Guard) RequireAuth(ctx context.Context) Decision {
	ok, err := g.Authenticated(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("Session load failed, denying route")
		return Denied
	}
	if !ok {
		return Denied
	}
	return Allowed
}

// RequireSuperuser gates admin routes. Without a token it is Denied (login
// redirect). With a token but no cached profile yet it is Loading: the
// profile arrives with the login response, so a brief gap is possible right
// after authentication. With a profile the flag decides.
func (g *Guard) RequireSuperuser(ctx context.Context) Decision {
	creds, err := g.store.Load(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("Session load failed, denying route")
		return Denied
	}
	if creds.Token == "" {
		return Denied
	}
	if creds.User == nil {
		return Loading
	}
	if !creds.User.IsSuperuser {
		return Denied
	}
	return Allowed
}
