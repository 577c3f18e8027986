/*
Package vibinremote turns global key presses into HTTP commands for a Vibin music
streamer.

A configured key, once released, becomes a POST to http://<vibin><path>. Capture
and network I/O run on separate goroutines joined by a FIFO queue, so a slow or
unreachable server never stalls the keyboard hook.

# Configuration

	{
	  "vibin": "vibin.local",
	  "request_timeout": 1,
	  "keymap": {
	    "PageUp":   { "url": "/api/transport/next" },
	    "PageDown": { "url": "/api/transport/previous" }
	  }
	}

YAML files with the same keys are accepted as well.

# Usage

	cfg, err := config.Load("vibin.json")
	if err != nil {
		log.Fatal(err)
	}

	remote, err := vibinremote.New(cfg, vibinremote.WithLogger(logger))
	if err != nil {
		log.Fatal(err) // unknown key name
	}

	// Blocks until the key hook stops.
	if err := remote.Run(ctx, gohook.New()); err != nil {
		log.Fatal(err)
	}
*/
package vibinremote
