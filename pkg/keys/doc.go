/*
Package keys defines the canonical keyboard key identifiers and the validator that
turns configured key names into them.

Names follow the platform capture naming (PageUp, KeyA, Num1, Kp0, UpArrow, ...) and
are matched exactly, so "pageup" and "Enter" are rejected. The error for a near miss
carries a suggestion ("did you mean PageUp?", "did you mean Return?").

	k, err := keys.Validate("PageUp")
	if errors.Is(err, keys.ErrInvalidKeyName) {
		// reject configuration
	}
*/
package keys
