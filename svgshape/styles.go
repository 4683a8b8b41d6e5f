package svgshape

import "strings"

// Styles is an ordered attribute map. Insertion order is preserved
// and reproduced verbatim in the rendered output, which keeps
// serialization deterministic.
type Styles struct {
	keys   []string
	values map[string]string
}

// NewStyles builds a style map from name/value pairs.
// An odd trailing argument is ignored.
func NewStyles(pairs ...string) *Styles {
	s := &Styles{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// Set adds or replaces an attribute. A replaced attribute keeps its
// original position.
func (s *Styles) Set(name, value string) *Styles {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, seen := s.values[name]; !seen {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
	return s
}

// Get returns the value of an attribute.
func (s *Styles) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// Delete removes an attribute. Deleting an absent attribute is a no-op.
func (s *Styles) Delete(name string) {
	if s == nil {
		return
	}
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, k := range s.keys {
		if k == name {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (s *Styles) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Names returns the attribute names in insertion order.
func (s *Styles) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Clone returns an independent copy sharing no state with s.
func (s *Styles) Clone() *Styles {
	if s == nil {
		return NewStyles()
	}
	c := &Styles{keys: append([]string(nil), s.keys...), values: make(map[string]string, len(s.values))}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

// Render serializes the attributes as name="value" fragments joined
// by single spaces. A nil or empty map renders as the empty string.
func (s *Styles) Render() string {
	if s == nil || len(s.keys) == 0 {
		return ""
	}
	chunks := make([]string, len(s.keys))
	for i, k := range s.keys {
		chunks[i] = k + `="` + s.values[k] + `"`
	}
	return strings.Join(chunks, " ")
}
