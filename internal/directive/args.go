package directive

import (
	"fmt"
	"strconv"
)

// Args is the ordered key -> values mapping of one directive line.
// Keys keep first-seen order and are unique.
type Args struct {
	keys   []string
	values map[string][]string
}

// NewArgs returns an empty argument mapping.
func NewArgs() Args {
	return Args{values: make(map[string][]string)}
}

// Set inserts key with its values. Inserting an existing key fails with ErrDuplicateKey.
func (a *Args) Set(key string, values []string) error {
	if a.values == nil {
		a.values = make(map[string][]string)
	}
	if _, exists := a.values[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	a.keys = append(a.keys, key)
	a.values[key] = append([]string(nil), values...)
	return nil
}

// Has reports whether key was given.
func (a Args) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Keys returns the argument keys in the order they appeared.
func (a Args) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a.keys)
}

// Values returns every value given for key, or nil when the key is absent.
func (a Args) Values(key string) []string {
	v, ok := a.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), v...)
}

// Get returns the first value for key, or def when the key is absent or has no values.
func (a Args) Get(key, def string) string {
	v := a.values[key]
	if len(v) == 0 {
		return def
	}
	return v[0]
}

// Float parses the first value for key as a number, or returns def when absent.
func (a Args) Float(key string, def float64) (float64, error) {
	raw := a.Get(key, "")
	if !a.Has(key) || raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrUnparsableNumber, key, raw)
	}
	return f, nil
}

// Int parses the first value for key as an integer, or returns def when absent.
func (a Args) Int(key string, def int) (int, error) {
	raw := a.Get(key, "")
	if !a.Has(key) || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrUnparsableNumber, key, raw)
	}
	return n, nil
}

// Clone returns a deep copy that shares nothing with a.
func (a Args) Clone() Args {
	c := NewArgs()
	for _, k := range a.keys {
		c.keys = append(c.keys, k)
		c.values[k] = append([]string(nil), a.values[k]...)
	}
	return c
}
