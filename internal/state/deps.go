package state

import (
	"context"
	"log/slog"

	"github.com/roach88/ontaste/internal/clock"
	"github.com/roach88/ontaste/internal/ids"
)

// Saver flushes the whole state to durable storage.
type Saver interface {
	SaveAll(ctx context.Context, st *State) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, st *State) error

// SaveAll calls f.
func (f SaverFunc) SaveAll(ctx context.Context, st *State) error {
	return f(ctx, st)
}

// Deps are the collaborators shared by the engines.
type Deps struct {
	Saver  Saver
	Clock  clock.Clock
	IDs    ids.Generator
	Logger *slog.Logger
}

// WithDefaults fills unset fields: a no-op saver, the system clock, UUIDv7
// ids and slog.Default().
func (d Deps) WithDefaults() Deps {
	if d.Saver == nil {
		d.Saver = SaverFunc(func(context.Context, *State) error { return nil })
	}
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	if d.IDs == nil {
		d.IDs = ids.UUIDv7Generator{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}
