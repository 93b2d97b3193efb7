package session

import (
	"context"

	"github.com/roach88/ontaste/internal/state"
)

// Manager owns the user registry and the current session.
type Manager struct {
	st   *state.State
	deps state.Deps
}

// New creates a Manager over st.
func New(st *state.State, deps state.Deps) *Manager {
	return &Manager{st: st, deps: deps.WithDefaults()}
}

// Register creates a user, starts a session for it and persists.
//
// The email must not be registered yet (exact, case-sensitive match) and
// password must equal confirmPassword; the duplicate check runs first.
// If the flush fails the user stays registered in memory and the
// *store.PersistError is returned.
func (m *Manager) Register(ctx context.Context, name, email, password, confirmPassword string) (state.User, error) {
	if _, exists := m.st.UserByEmail(email); exists {
		return state.User{}, &AuthError{Code: ErrCodeDuplicateEmail, Email: email}
	}
	if password != confirmPassword {
		return state.User{}, &AuthError{Code: ErrCodePasswordMismatch}
	}

	u := state.User{
		ID:               m.deps.IDs.Generate(),
		Name:             name,
		Email:            email,
		Password:         password,
		RegistrationDate: m.deps.Clock.Now().UTC(),
	}
	m.st.Users = append(m.st.Users, u)
	m.st.SetCurrentUser(u)

	if err := m.deps.Saver.SaveAll(ctx, m.st); err != nil {
		return state.User{}, err
	}
	m.deps.Logger.Info("user registered", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Login starts a session for the user whose email and password both match
// exactly, then persists. On failure the current session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (state.User, error) {
	u, ok := m.st.UserByEmail(email)
	if !ok || u.Password != password {
		return state.User{}, &AuthError{Code: ErrCodeInvalidCredentials, Email: email}
	}

	m.st.SetCurrentUser(u)
	if err := m.deps.Saver.SaveAll(ctx, m.st); err != nil {
		return state.User{}, err
	}
	m.deps.Logger.Info("user logged in", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Logout ends the session and empties the cart, then persists. Logging out
// without a session still clears the cart.
func (m *Manager) Logout(ctx context.Context) error {
	var email string
	if m.st.CurrentUser != nil {
		email = m.st.CurrentUser.Email
	}
	m.st.CurrentUser = nil
	m.st.ClearCart()

	if err := m.deps.Saver.SaveAll(ctx, m.st); err != nil {
		return err
	}
	m.deps.Logger.Info("user logged out", "email", email)
	return nil
}

// Current returns the signed-in user, if any.
func (m *Manager) Current() (state.User, bool) {
	if m.st.CurrentUser == nil {
		return state.User{}, false
	}
	return *m.st.CurrentUser, true
}

// Users returns a copy of the user registry.
func (m *Manager) Users() []state.User {
	return append([]state.User(nil), m.st.Users...)
}
