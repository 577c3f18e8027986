package capture

import (
	"context"

	"github.com/aretw0/vibinremote/pkg/keys"
)

// EventKind distinguishes key transitions.
type EventKind int

const (
	KindOther EventKind = iota
	KindPress
	KindRelease
)

func (k EventKind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	default:
		return "other"
	}
}

// Event is a single observation from a key source.
// Key is keys.Unknown when the source could not map the native code.
type Event struct {
	Kind EventKind
	Key  keys.Key
}

// Source is the platform capability delivering global key events.
//
// Listen invokes handle for every event and blocks until the underlying mechanism
// stops. It returns nil when it ends normally or ctx is cancelled, and an error
// when the mechanism fails.
type Source interface {
	Listen(ctx context.Context, handle func(Event)) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, handle func(Event)) error

func (f SourceFunc) Listen(ctx context.Context, handle func(Event)) error {
	return f(ctx, handle)
}
