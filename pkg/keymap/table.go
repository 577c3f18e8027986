package keymap

import (
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/vibinremote/pkg/config"
	"github.com/aretw0/vibinremote/pkg/keys"
)

// Table maps canonical keys to their configured actions.
// It is immutable once built and safe for concurrent readers.
type Table struct {
	entries map[keys.Key]config.KeyConfig
}

// Build validates every keymap name in cfg and compiles the lookup table.
//
// Construction is all-or-nothing: the first invalid name aborts the build and
// no table is returned. Names are processed in sorted order, so the error
// reported for a keymap with several bad names is always the same one.
func Build(cfg config.AppConfig) (*Table, error) {
	entries := make(map[keys.Key]config.KeyConfig, len(cfg.Keymap))

	for _, name := range slices.Sorted(maps.Keys(cfg.Keymap)) {
		k, err := keys.Validate(name)
		if err != nil {
			return nil, err
		}
		entries[k] = cfg.Keymap[name]
	}

	return &Table{entries: entries}, nil
}

// Lookup returns the action bound to k.
func (t *Table) Lookup(k keys.Key) (config.KeyConfig, bool) {
	kc, ok := t.entries[k]
	return kc, ok
}

// Len returns the number of registered keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the registered keys ordered by name.
func (t *Table) Keys() []keys.Key {
	out := slices.Collect(maps.Keys(t.entries))
	slices.SortFunc(out, func(a, b keys.Key) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
