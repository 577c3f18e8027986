//go:build !cgo

package gohook

import (
	"context"

	"github.com/aretw0/vibinremote/pkg/capture"
)

func (s *Source) Listen(ctx context.Context, handle func(capture.Event)) error {
	return ErrUnsupported
}
