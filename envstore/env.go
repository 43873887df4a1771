package envstore

import (
	"os"
	"strings"
	"sync"
)

// Process is a store backed by the process environment table.
type Process struct{}

// Lookup returns the environment variable and whether it is set.
func (Process) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set assigns the environment variable.
func (Process) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Map is an in-memory store safe for concurrent use.
// Individual calls are serialized; a Lookup followed by a Set is not atomic.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap creates an empty Map, optionally seeded with initial values.
func NewMap(initial ...map[string]string) *Map {
	m := &Map{vars: make(map[string]string)}
	for _, seed := range initial {
		for k, v := range seed {
			m.vars[k] = v
		}
	}
	return m
}

// Lookup returns the stored value and whether the name is present.
func (m *Map) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[name]
	return v, ok
}

// Set stores value under name.
func (m *Map) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[name] = value
	return nil
}

// Snapshot returns a copy of all stored values.
func (m *Map) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// Options configures Filter.
type Options struct {
	// Prefix filters vars starting with prefix. Empty = keep all vars.
	// Prefix matching behavior is controlled by CaseSensitive.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// When false, APP_ matches app_, App_, etc.
	CaseSensitive bool

	// StripPrefix removes the matched prefix from returned keys.
	StripPrefix bool
}

// Filter converts KEY=VALUE pairs to a map, keeping only keys that match the prefix.
// Entries without "=" and entries whose key becomes empty are ignored.
func Filter(environ []string, opts Options) map[string]string {
	result := make(map[string]string)

	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if opts.Prefix != "" {
			if !hasPrefix(key, opts.Prefix, opts.CaseSensitive) {
				continue
			}
			if opts.StripPrefix {
				key = key[len(opts.Prefix):]
			}
		}

		if key == "" {
			continue
		}
		result[key] = value
	}

	return result
}

func hasPrefix(key, prefix string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasPrefix(key, prefix)
	}
	return len(key) >= len(prefix) && strings.EqualFold(key[:len(prefix)], prefix)
}
