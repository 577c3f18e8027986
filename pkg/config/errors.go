package config

import "fmt"

// LoadError is returned when the configuration file cannot be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Could not load config data: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError is returned when the configuration is malformed.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse config data: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
