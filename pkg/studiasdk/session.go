package studiasdk

import (
	"context"
	"log/slog"
	"sync"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

// State is the session manager's authentication state.
type State int

const (
	// StateInitializing holds until the startup check settles.
	StateInitializing State = iota
	// StateAuthenticated means a user is logged in.
	StateAuthenticated
	// StateUnauthenticated means no valid session exists.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session state handed to observers.
// Authenticated implies User is non-nil.
type Snapshot struct {
	State   State
	User    *User
	Loading bool
}

// Authenticated reports whether the snapshot holds a logged-in session.
func (s Snapshot) Authenticated() bool { return s.State == StateAuthenticated }

// SessionManager owns the process-wide authentication state machine. UI
// layers subscribe to snapshots instead of polling. Safe for concurrent use.
type SessionManager struct {
	client *Client
	logger *slog.Logger

	mu      sync.RWMutex
	state   State
	user    *User
	loading bool
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewSessionManager returns a manager in the initializing state. Call Start
// to settle it.
func NewSessionManager(client *Client, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		client:  client,
		logger:  logger,
		state:   StateInitializing,
		loading: true,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Start runs the startup check: a stored access token plus a stored user
// record restore an authenticated session; anything else, including storage
// failures, fails closed to unauthenticated.
func (m *SessionManager) Start(ctx context.Context) {
	state, user := StateUnauthenticated, (*User)(nil)

	if m.client.IsAuthenticated(ctx) {
		stored, err := m.client.StoredUser(ctx)
		if err == nil && stored != nil {
			state, user = StateAuthenticated, stored

			token, _ := m.client.Credentials().Get(ctx, credstore.KeyAccessToken)
			if exp, ok := TokenExpiry(token); ok {
				m.logger.Debug("session restored", "user_id", stored.ID, "token_expires", exp)
			}
		} else if err != nil {
			m.logger.Warn("stored user unreadable, session not restored", "error", err)
		}
	}

	m.transition(func() {
		m.state = state
		m.user = user
		m.loading = false
	})
}

// Login authenticates and, on success, moves the session to authenticated.
// Failures leave the session unauthenticated and return the normalized
// message in the envelope.
func (m *SessionManager) Login(ctx context.Context, email, password string) Result[*User] {
	m.transition(func() { m.loading = true })

	data, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.transition(func() {
			m.state = StateUnauthenticated
			m.user = nil
			m.loading = false
		})
		return Fail[*User](err.Error())
	}

	user := data.User
	m.transition(func() {
		m.state = StateAuthenticated
		m.user = &user
		m.loading = false
	})
	return Ok(&user)
}

// Logout ends the session. The state always becomes unauthenticated, even
// when clearing the stored credentials fails.
func (m *SessionManager) Logout(ctx context.Context) Result[struct{}] {
	m.transition(func() { m.loading = true })

	err := m.client.Logout(ctx)

	m.transition(func() {
		m.state = StateUnauthenticated
		m.user = nil
		m.loading = false
	})

	if err != nil {
		m.logger.Warn("logout cleanup failed, session cleared anyway", "error", err)
		return Fail[struct{}](err.Error())
	}
	return Ok(struct{}{})
}

// Snapshot returns the current session state.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Authenticated reports whether a user is logged in.
func (m *SessionManager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateAuthenticated
}

// User returns a copy of the current user, or nil.
func (m *SessionManager) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Subscribe registers fn to receive a snapshot after every transition. The
// returned func unsubscribes.
func (m *SessionManager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// transition applies a state mutation and notifies subscribers outside the
// lock with a snapshot copy.
func (m *SessionManager) transition(mutate func()) {
	m.mu.Lock()
	mutate()
	snap := m.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (m *SessionManager) snapshotLocked() Snapshot {
	snap := Snapshot{State: m.state, Loading: m.loading}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}
