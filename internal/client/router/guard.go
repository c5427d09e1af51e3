package router

import (
	"context"

	"github.com/dmitrijs2005/goalkeeper/internal/client/session"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// Session is what the guard needs from the session manager.
// *session.Manager satisfies it.
type Session interface {
	State() session.State
	Invalidate(ctx context.Context) error
}

type DecisionKind int

const (
	// Pending means the session has not been restored yet; show a neutral
	// placeholder and decide later.
	Pending DecisionKind = iota
	Allow
	Redirect
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "pending"
	}
}

// Decision is the outcome of a guard check. To and From are set for Redirect.
type Decision struct {
	Kind DecisionKind
	To   string
	From string
}

type Guard struct {
	sess Session
	nav  *Navigator
	log  logging.Logger
}

func NewGuard(sess Session, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	return &Guard{sess: sess, log: log.With("component", "router")}
}

// Check classifies a navigation to path. Until the session is restored every
// path is pending, public ones included.
func (g *Guard) Check(path string) Decision {
	st := g.sess.State()
	if st == session.StateUnknown {
		return Decision{Kind: Pending}
	}

	r := Lookup(path)
	if !r.Protected {
		return Decision{Kind: Allow}
	}

	switch st {
	case session.StateAuthenticated:
		return Decision{Kind: Allow}
	default:
		return Decision{Kind: Redirect, To: PathLogin, From: r.Path}
	}
}

// HandleAuthFailure is called by the API gateway for every 401 response.
// It drops the session and forces the navigator to the login view,
// remembering where the user was.
func (g *Guard) HandleAuthFailure(ctx context.Context) {
	if err := g.sess.Invalidate(ctx); err != nil {
		g.log.Error(ctx, "invalidate session after 401", "error", err)
	}
	if g.nav == nil {
		return
	}
	from := g.nav.Current().Path
	if from == PathLogin {
		from = ""
	}
	g.nav.replace(Location{Path: PathLogin, From: from})
	g.log.Warn(ctx, "authorization failed, redirected to login", "from", from)
}
