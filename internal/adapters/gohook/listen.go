//go:build cgo

package gohook

import (
	"context"

	hook "github.com/robotn/gohook"

	"github.com/aretw0/vibinremote/pkg/capture"
)

// Listen starts the global hook and forwards key events to handle until ctx is
// cancelled (nil) or the hook stops on its own (ErrHookStopped).
func (s *Source) Listen(ctx context.Context, handle func(capture.Event)) error {
	events := hook.Start()
	s.logger.Debug("Global key hook started")

	for {
		select {
		case <-ctx.Done():
			hook.End()
			s.logger.Debug("Global key hook stopped", "reason", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return ErrHookStopped
			}
			if ev.Kind == hook.HookDisabled {
				hook.End()
				return ErrHookStopped
			}
			if e := translate(ev.Kind, ev.Keycode); e.Kind != capture.KindOther {
				handle(e)
			}
		}
	}
}
