package types

import (
	"bytes"
	"encoding/json"
)

// ExtraConfig is an insertion-ordered string-to-string mapping for
// configuration keys that are not part of the canonical key set. Keys are
// unique; setting an existing key overwrites its value in place without
// moving it. Display and serialization iterate in insertion order.
type ExtraConfig struct {
	keys   []string
	values map[string]string
}

// NewExtraConfig returns an empty ExtraConfig.
func NewExtraConfig() *ExtraConfig {
	return &ExtraConfig{values: make(map[string]string)}
}

// Set stores value under key, appending the key on first use.
func (e *ExtraConfig) Set(key, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value for key and whether it is present.
func (e *ExtraConfig) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Delete removes key if present.
func (e *ExtraConfig) Delete(key string) {
	if _, ok := e.values[key]; !ok {
		return
	}
	delete(e.values, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (e *ExtraConfig) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Len returns the number of entries.
func (e *ExtraConfig) Len() int {
	return len(e.keys)
}

// Clone returns an independent copy preserving insertion order.
func (e *ExtraConfig) Clone() *ExtraConfig {
	out := NewExtraConfig()
	for _, k := range e.keys {
		out.Set(k, e.values[k])
	}
	return out
}

// Equal reports whether both configs hold the same key/value pairs,
// ignoring insertion order.
func (e *ExtraConfig) Equal(other *ExtraConfig) bool {
	if other == nil || len(e.keys) != len(other.keys) {
		return len(e.keys) == 0 && (other == nil || len(other.keys) == 0)
	}
	for k, v := range e.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON emits a JSON object with keys in insertion order.
func (e *ExtraConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object. Go's decoder does not expose key
// order, so entries arrive in map order; use Set to rebuild ordered data.
func (e *ExtraConfig) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*e = *NewExtraConfig()
	for k, v := range m {
		e.Set(k, v)
	}
	return nil
}
