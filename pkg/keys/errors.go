package keys

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyName matches any InvalidKeyNameError via errors.Is.
var ErrInvalidKeyName = errors.New("invalid key name")

// InvalidKeyNameError is returned when a configured key name is not recognized.
type InvalidKeyNameError struct {
	Name string
	// Suggestion is the key name probably meant, if any.
	Suggestion string
}

func (e *InvalidKeyNameError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("Provided key name was invalid: %s (did you mean %s?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("Provided key name was invalid: %s", e.Name)
}

func (e *InvalidKeyNameError) Is(target error) bool {
	return target == ErrInvalidKeyName
}
