package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/ontaste/internal/ids"
	"github.com/roach88/ontaste/internal/state"
)

// RecordingSaver counts SaveAll calls and keeps a clone of the last state it
// was asked to save. Err, when set, is returned from SaveAll instead.
type RecordingSaver struct {
	mu    sync.Mutex
	Err   error
	calls int
	last  *state.State
}

// SaveAll records the call.
func (s *RecordingSaver) SaveAll(_ context.Context, st *state.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return s.Err
	}
	s.last = st.Clone()
	return nil
}

// Calls reports how many times SaveAll was called.
func (s *RecordingSaver) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Last returns the state captured by the last successful SaveAll, or nil.
func (s *RecordingSaver) Last() *state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Deps returns deterministic engine dependencies: a StepClock starting at
// DefaultEpoch, ids "id-1", "id-2", ... and a discarding logger.
func Deps(saver state.Saver) state.Deps {
	return state.Deps{
		Saver:  saver,
		Clock:  NewStepClock(DefaultEpoch, 0),
		IDs:    ids.NewSequenceGenerator("id"),
		Logger: DiscardLogger(),
	}
}
