package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/ontaste/internal/state"
)

// createTestSQLite opens a fresh database under t.TempDir().
func createTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testTime = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

// sampleState returns a state with one user, an active session, two cart
// lines and one order.
func sampleState() *state.State {
	u := state.User{ID: "u1", Name: "Анна", Email: "a@x.com", Password: "p1", RegistrationDate: testTime}
	latte := state.CartItem{ID: "c1", Name: "Латте", Price: 220, Image: "images/latte.png", Quantity: 2, AddedAt: testTime}
	salad := state.CartItem{ID: "c2", Name: "Салат", Price: 160, Image: "images/salad.png", Quantity: 1, AddedAt: testTime}

	st := state.New()
	st.Users = append(st.Users, u)
	st.SetCurrentUser(u)
	st.Cart = []state.CartItem{latte, salad}
	st.Orders = []state.Order{{
		ID:         "o1",
		UserEmail:  u.Email,
		Items:      []state.CartItem{latte},
		Total:      440,
		PickupTime: "09:30",
		Date:       "02.01.2026",
		Status:     state.StatusProcessing,
		CreatedAt:  testTime,
	}}
	return st
}
