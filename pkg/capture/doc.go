/*
Package capture implements the key capture loop.

The loop consumes events from a Source (the platform key hook, or a ScriptSource
for headless runs and tests), looks up released keys in a keymap.Table and hands
the resolved URL to the dispatch queue. Key presses are ignored so a held key
fires once, on release.

	loop := capture.NewLoop(table, cfg.BaseURL(), queue, capture.WithLogger(logger))
	if err := loop.Run(ctx, source); err != nil {
		// the key source failed; nothing left to do
	}
*/
package capture
