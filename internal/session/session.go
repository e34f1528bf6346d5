// Package session manages the admin credential lifecycle: persistence,
// verification against the backend, and the resulting authentication
// state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/odelu/catalog/internal/client"
)

//go:generate mockgen -destination=mocks/verifier.go -package=mocks . Verifier

// Verifier checks a candidate credential against the backend. Any error,
// whatever the cause (wrong key, server error, network failure), means
// the credential is not usable.
type Verifier interface {
	VerifyKey(ctx context.Context, key string) error
}

// Store persists the credential across runs.
type Store interface {
	// Load returns the stored credential, or "" when none is stored.
	Load() (string, error)
	Save(key string) error
	Clear() error
}

// State is the authentication state.
type State int

const (
	// Unauthenticated means no usable credential is held.
	Unauthenticated State = iota
	// Checking means a credential is being verified against the backend.
	Checking
	// Authenticated means the held credential verified successfully.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Manager holds the credential and its verification state. Construct one
// per process and share it; it is safe for concurrent use.
type Manager struct {
	store    Store
	verifier Verifier

	mu      sync.Mutex
	state   State
	key     string
	lastErr string
}

// NewManager creates a manager in the Checking state; call Check to
// resolve it against any previously stored credential.
func NewManager(store Store, verifier Verifier) *Manager {
	return &Manager{store: store, verifier: verifier, state: Checking}
}

// Check resolves the startup state. With no stored credential it settles
// on Unauthenticated without a network call. With one, it verifies the
// credential; a failure of any kind discards the stale credential
// silently.
func (m *Manager) Check(ctx context.Context) error {
	m.mu.Lock()
	m.state = Checking
	m.mu.Unlock()

	key, err := m.store.Load()
	if err != nil {
		m.settle(Unauthenticated, "")
		return fmt.Errorf("load credential: %w", err)
	}
	if key == "" {
		m.settle(Unauthenticated, "")
		return nil
	}

	if err := m.verifier.VerifyKey(ctx, key); err != nil {
		_ = m.store.Clear()
		m.settle(Unauthenticated, "")
		return nil
	}

	m.mu.Lock()
	m.state = Authenticated
	m.key = key
	m.mu.Unlock()
	return nil
}

// Login verifies the candidate credential. On success it is persisted and
// the manager becomes Authenticated; on failure the manager stays
// Unauthenticated and Err returns the failure message.
func (m *Manager) Login(ctx context.Context, key string) bool {
	m.mu.Lock()
	m.state = Checking
	m.lastErr = ""
	m.mu.Unlock()

	if err := m.verifier.VerifyKey(ctx, key); err != nil {
		m.settle(Unauthenticated, loginMessage(err))
		return false
	}

	if err := m.store.Save(key); err != nil {
		m.settle(Unauthenticated, fmt.Sprintf("could not store credential: %v", err))
		return false
	}

	m.mu.Lock()
	m.state = Authenticated
	m.key = key
	m.mu.Unlock()
	return true
}

// Logout discards the stored credential immediately. No network call is
// made.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.settle(Unauthenticated, "")
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsAuthenticated reports whether a verified credential is held.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == Authenticated
}

// Key returns the verified credential, or "" when unauthenticated.
func (m *Manager) Key() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		return ""
	}
	return m.key
}

// Err returns the last login failure message, if any.
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Manager) settle(state State, errMsg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.key = ""
	m.lastErr = errMsg
}

// loginMessage prefers the server-provided message over transport noise.
func loginMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Invalid API key or server error"
}
