package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRequestTimeout is used when request_timeout is absent.
	DefaultRequestTimeout = 1
	// MaxRequestTimeout is the largest accepted request_timeout, in seconds.
	MaxRequestTimeout = 255
)

// KeyConfig describes the action bound to one key.
type KeyConfig struct {
	URL string `json:"url" yaml:"url" mapstructure:"url"`
}

// AppConfig is the remote control configuration.
type AppConfig struct {
	// Vibin is the host[:port] authority of the Vibin server.
	Vibin string `json:"vibin" yaml:"vibin" mapstructure:"vibin"`
	// RequestTimeout is the per-request deadline in whole seconds.
	RequestTimeout int `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
	// Keymap binds key names to actions.
	Keymap map[string]KeyConfig `json:"keymap" yaml:"keymap" mapstructure:"keymap"`
}

// BaseURL returns the scheme and authority every action path is appended to.
func (c AppConfig) BaseURL() string {
	return "http://" + c.Vibin
}

// Timeout returns RequestTimeout as a duration, falling back to the default.
func (c AppConfig) Timeout() time.Duration {
	secs := c.RequestTimeout
	if secs <= 0 {
		secs = DefaultRequestTimeout
	}
	return time.Duration(secs) * time.Second
}

// Format identifies the encoding of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, &LoadError{Path: path, Err: err}
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes raw configuration data in the given format.
func Parse(data []byte, format Format) (AppConfig, error) {
	var raw map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return AppConfig{}, &ParseError{Err: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return AppConfig{}, &ParseError{Err: err}
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("trailing data after JSON document")
			}
			return AppConfig{}, &ParseError{Err: err}
		}
	}

	if raw == nil {
		return AppConfig{}, &ParseError{Err: fmt.Errorf("empty configuration")}
	}

	return Decode(raw)
}

// Decode maps a generic document onto AppConfig and checks required fields.
func Decode(raw map[string]any) (AppConfig, error) {
	cfg := AppConfig{RequestTimeout: DefaultRequestTimeout}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: rejectNumberAsString,
		Metadata:   &md,
		Result:     &cfg,
	})
	if err != nil {
		return AppConfig{}, &ParseError{Err: err}
	}
	if err := dec.Decode(raw); err != nil {
		return AppConfig{}, &ParseError{Err: err}
	}

	for _, field := range []string{"vibin", "keymap"} {
		if slices.Contains(md.Unset, field) {
			return AppConfig{}, &ParseError{Err: fmt.Errorf("missing field `%s`", field)}
		}
	}

	if err := checkURLs(raw); err != nil {
		return AppConfig{}, &ParseError{Err: err}
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, &ParseError{Err: err}
	}

	return cfg, nil
}

var numberType = reflect.TypeOf(json.Number(""))

// rejectNumberAsString stops mapstructure from storing a JSON number in a
// string field; json.Number has string kind and would otherwise pass through.
func rejectNumberAsString(from, to reflect.Type, data any) (any, error) {
	if from == numberType && to.Kind() == reflect.String {
		return nil, fmt.Errorf("expected a string, got number %v", data)
	}
	return data, nil
}

// checkURLs requires every keymap entry to carry a url. An empty url is a
// valid path suffix.
func checkURLs(raw map[string]any) error {
	keymap, ok := raw["keymap"].(map[string]any)
	if !ok {
		return nil
	}
	for name, v := range keymap {
		entry, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("keymap entry %q: missing field `url`", name)
		}
		if u, ok := entry["url"]; !ok || u == nil {
			return fmt.Errorf("keymap entry %q: missing field `url`", name)
		}
	}
	return nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.Vibin) == "" {
		return fmt.Errorf("field `vibin` must not be empty")
	}
	if c.RequestTimeout < 1 || c.RequestTimeout > MaxRequestTimeout {
		return fmt.Errorf("field `request_timeout` must be between 1 and %d seconds (got %d)", MaxRequestTimeout, c.RequestTimeout)
	}
	return nil
}
