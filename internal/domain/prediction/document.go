package prediction

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Document is an opaque JSON object, used for the GET /data-format body.
type Document struct {
	root map[string]any
}

// NewDocument wraps m. A nil map yields an empty document.
func NewDocument(m map[string]any) Document {
	if m == nil {
		m = map[string]any{}
	}
	return Document{root: m}
}

// Map returns the underlying object.
func (d Document) Map() map[string]any {
	if d.root == nil {
		return map[string]any{}
	}
	return d.root
}

// Keys returns the top-level keys, sorted.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.root))
	for k := range d.root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup walks nested objects along path.
func (d Document) Lookup(path ...string) (any, bool) {
	var cur any = d.root
	for _, p := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Section returns the nested object at name.
func (d Document) Section(name string) (Document, bool) {
	v, ok := d.Lookup(name)
	if !ok {
		return Document{}, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Document{}, false
	}
	return Document{root: obj}, true
}

// String returns the value at path when it is a string.
func (d Document) String(path ...string) (string, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Len reports the number of top-level keys.
func (d Document) Len() int { return len(d.root) }

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// UnmarshalJSON implements json.Unmarshaler. The body must be a JSON object.
func (d *Document) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	*d = NewDocument(m)
	return nil
}
