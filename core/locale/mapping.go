package locale

import "sort"

// Mapping is an ordered key→string translation set.
// The order of first insertion is preserved; setting an existing key keeps its position.
// A nil *Mapping behaves as an empty mapping for all read operations.
type Mapping struct {
	keys   []string
	values map[string]string
}

// New creates an empty mapping.
func New() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// FromPairs builds a mapping from alternating key/value arguments.
// A trailing key without value is stored with an empty string.
func FromPairs(pairs ...string) *Mapping {
	m := New()
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		m.Set(pairs[i], value)
	}
	return m
}

// FromMap builds a mapping from a Go map. Keys are inserted in sorted order.
func FromMap(src map[string]string) *Mapping {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := New()
	for _, k := range keys {
		m.Set(k, src[k])
	}
	return m
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored for key.
func (m *Mapping) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. New keys are appended at the end.
func (m *Mapping) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Clone returns an independent copy of the mapping.
// Values are plain strings, so copying keys and values is a deep copy.
func (m *Mapping) Clone() *Mapping {
	out := New()
	if m == nil {
		return out
	}
	out.keys = make([]string, len(m.keys))
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Range calls fn for every entry in order until fn returns false.
func (m *Mapping) Range(fn func(key, value string) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap returns the entries as an unordered Go map.
func (m *Mapping) ToMap() map[string]string {
	out := make(map[string]string, m.Len())
	m.Range(func(k, v string) bool {
		out[k] = v
		return true
	})
	return out
}

// Equal reports whether both mappings hold the same entries, ignoring order.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(k, v string) bool {
		ov, ok := other.Get(k)
		if !ok || ov != v {
			equal = false
		}
		return equal
	})
	return equal
}

// MarshalJSON encodes the mapping as a JSON object in key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	return encodeJSON(m, "")
}

// UnmarshalJSON decodes a flat JSON object, keeping the key order of the input.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
