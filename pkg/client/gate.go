package client

import (
	"context"
	"log/slog"
	"sync"

	"go-scancollect-backend/internal/domain"
)

// GateState is the session gate's view of the current auth state.
type GateState string

const (
	// StateUnchecked means no session lookup has happened yet.
	StateUnchecked GateState = "unchecked"
	// StateChecking means a session lookup is in flight.
	StateChecking GateState = "checking"
	StateAuthenticated   GateState = "authenticated"
	StateUnauthenticated GateState = "unauthenticated"
)

// Provisioner is the slice of the API client the gate needs: register the
// session, then make sure the backend user record exists. *Client satisfies
// it.
type Provisioner interface {
	Authenticate(ctx context.Context) error
	EnsureUser(ctx context.Context, username, avatarURL string) (*domain.User, error)
}

// SessionGate decides, from auth session events, whether the caller is
// signed in, and provisions the backend user record exactly once per
// signed-in session no matter how many session events fire.
//
// The provisioning flag is flipped synchronously under the lock before the
// backend calls start, so two rapid events cannot both pass the check.
// Provisioning itself runs in a goroutine; its failure is logged, never
// surfaced, and does not flip the state back.
type SessionGate struct {
	sessions SessionProvider
	backend  Provisioner
	log      *slog.Logger

	mu    sync.Mutex
	state GateState
	sent  bool

	// pending tracks the in-flight provisioning goroutine so tests and
	// shutdown paths can wait for it.
	pending sync.WaitGroup
}

func NewSessionGate(sessions SessionProvider, backend Provisioner, log *slog.Logger) *SessionGate {
	return &SessionGate{
		sessions: sessions,
		backend:  backend,
		log:      log,
		state:    StateUnchecked,
	}
}

// State returns the current gate state.
func (g *SessionGate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Check resolves the current session from the provider and feeds it through
// the gate. Call once on startup; afterwards push auth events through
// HandleSessionChange.
func (g *SessionGate) Check(ctx context.Context) GateState {
	g.mu.Lock()
	g.state = StateChecking
	g.mu.Unlock()

	session, err := g.sessions.CurrentSession(ctx)
	if err != nil {
		g.log.Error("session lookup failed", "error", err)
		session = nil
	}
	return g.HandleSessionChange(ctx, session)
}

// HandleSessionChange processes one auth event. A nil session means signed
// out. The returned state is the state after the event; provisioning side
// effects may still be running.
func (g *SessionGate) HandleSessionChange(ctx context.Context, session *Session) GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if session == nil {
		g.state = StateUnauthenticated
		// A later sign-in is a fresh session and provisions again.
		g.sent = false
		return g.state
	}

	g.state = StateAuthenticated
	if !g.sent {
		g.sent = true
		g.pending.Add(1)
		go g.provision(ctx, session)
	}
	return g.state
}

// Wait blocks until any in-flight provisioning attempt finishes.
func (g *SessionGate) Wait() {
	g.pending.Wait()
}

func (g *SessionGate) provision(ctx context.Context, session *Session) {
	defer g.pending.Done()

	if err := g.backend.Authenticate(ctx); err != nil {
		g.log.Warn("session registration failed", "user_id", session.UserID, "error", err)
	}

	if _, err := g.backend.EnsureUser(ctx, session.Username, session.AvatarURL); err != nil {
		g.log.Warn("user provisioning failed", "user_id", session.UserID, "error", err)
	}
}
