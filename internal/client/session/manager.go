package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/goalkeeper/internal/client/credentials"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// CredentialStore is the persistence side of a session.
// *credentials.Holder satisfies it.
type CredentialStore interface {
	Save(ctx context.Context, token string, user *models.User) error
	Read(ctx context.Context) (*credentials.Credentials, error)
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// State is the coarse authentication state used by route guarding.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Manager is the single authority over the session. Every credential change
// goes through it and is mirrored into the Store in the same call.
type Manager struct {
	creds CredentialStore
	store *Store
	log   logging.Logger

	once  sync.Once
	ready atomic.Bool
}

func NewManager(creds CredentialStore, store *Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{creds: creds, store: store, log: log.With("component", "session")}
}

func (m *Manager) Store() *Store { return m.store }

// Restore loads persisted credentials into the Store. Only the first call
// does any work. Storage failures are logged and leave the session empty.
func (m *Manager) Restore(ctx context.Context) {
	m.once.Do(func() {
		defer m.ready.Store(true)

		c, err := m.creds.Read(ctx)
		if err != nil {
			m.log.Warn(ctx, "restore session", "error", err)
			m.store.Clear()
			return
		}
		if c == nil || c.Token == "" {
			m.store.Clear()
			return
		}
		m.store.Set(c.User)
		m.log.Debug(ctx, "session restored", "user", c.User.Name)
	})
}

// Ready reports whether Restore has completed.
func (m *Manager) Ready() bool {
	return m.ready.Load()
}

// Establish persists token and user and then publishes the user.
// A nil user is stored as the placeholder identity.
func (m *Manager) Establish(ctx context.Context, token string, user *models.User) error {
	if err := m.creds.Save(ctx, token, user); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	if user == nil {
		user = models.PlaceholderUser()
	}
	m.store.Set(user)
	return nil
}

// Invalidate removes the persisted credentials and empties the Store.
// The Store is emptied even if the storage delete fails.
func (m *Manager) Invalidate(ctx context.Context) error {
	err := m.creds.Clear(ctx)
	m.store.Clear()
	if err != nil {
		m.log.Error(ctx, "clear credentials", "error", err)
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Token returns the persisted access token, "" when logged out.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.creds.Token(ctx)
}

func (m *Manager) State() State {
	if !m.Ready() {
		return StateUnknown
	}
	if m.store.Get().IsAuthenticated() {
		return StateAuthenticated
	}
	return StateUnauthenticated
}
