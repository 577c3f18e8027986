package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/vibinremote/pkg/keys"
)

// ScriptSource replays key events from text, one directive per line:
//
//	release PageUp
//	press PageUp
//	tap PageUp      # press then release
//	PageUp          # same as tap
//	wait 250ms
//
// Blank lines and text after '#' are ignored. Unrecognized key names are
// delivered as keys.Unknown, like an unmapped physical key.
type ScriptSource struct {
	r io.Reader
}

// NewScriptSource creates a source reading directives from r.
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{r: r}
}

// Listen replays the script. It returns nil at end of input or when ctx is
// cancelled, and an error for unreadable input or a malformed directive.
// Reading happens on its own goroutine, so cancellation does not wait for a
// blocked reader such as an idle stdin.
func (s *ScriptSource) Listen(ctx context.Context, handle func(Event)) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(s.r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	lineNo := 0
	for {
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading key script: %w", err)
				}
				return nil
			}
			line = l
		}
		if ctx.Err() != nil {
			return nil
		}
		lineNo++

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)

		switch len(fields) {
		case 0:
			continue
		case 1:
			k := lookup(fields[0])
			handle(Event{Kind: KindPress, Key: k})
			handle(Event{Kind: KindRelease, Key: k})
		case 2:
			if err := s.apply(ctx, fields[0], fields[1], handle); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return fmt.Errorf("line %d: expected \"<directive> <argument>\", got %q", lineNo, line)
		}
	}
}

func (s *ScriptSource) apply(ctx context.Context, directive, arg string, handle func(Event)) error {
	switch directive {
	case "press":
		handle(Event{Kind: KindPress, Key: lookup(arg)})
	case "release":
		handle(Event{Kind: KindRelease, Key: lookup(arg)})
	case "tap":
		k := lookup(arg)
		handle(Event{Kind: KindPress, Key: k})
		handle(Event{Kind: KindRelease, Key: k})
	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return fmt.Errorf("invalid wait duration: %w", err)
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	default:
		return fmt.Errorf("unknown directive %q", directive)
	}
	return nil
}

func lookup(name string) keys.Key {
	k, err := keys.Validate(name)
	if err != nil {
		return keys.Unknown
	}
	return k
}
