package rep

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// The serialized forms are representation transparent: a plain JSON
// array, object, or string with no trace of the storage mode.
// Decoding always drains into the owned heap-backed form.

// MarshalJSON encodes the content as a JSON array.
func (a Array[T, C, RC]) MarshalJSON() ([]byte, error) {
	items := a.View()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes a JSON array into the shared form.
func (a *Array[T, C, RC]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("immut: decode array: %w", err)
	}
	*a = Array[T, C, RC]{mode: modeShared, shared: newSharedSlice[T, C, RC](items)}
	return nil
}

// MarshalJSON encodes the entries as a JSON object in insertion order.
// Keys must themselves encode as JSON strings.
func (m Map[K, V, C, RC]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m.pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(p.Key)
		if err != nil {
			return nil, fmt.Errorf("immut: encode map key: %w", err)
		}
		if len(kb) == 0 || kb[0] != '"' {
			return nil, fmt.Errorf("immut: map key %v does not encode as a JSON string", p.Key)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("immut: encode map value for key %v: %w", p.Key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the shared form, keeping
// the document's key order. encoding/json would shuffle the entries
// through an unordered map, so the object is walked with gjson, which
// visits members in document order.
func (m *Map[K, V, C, RC]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("immut: decode map: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("immut: decode map: expected a JSON object")
	}
	var pairs []Pair[K, V]
	var walkErr error
	doc.ForEach(func(key, value gjson.Result) bool {
		kb, err := json.Marshal(key.String())
		if err != nil {
			walkErr = fmt.Errorf("immut: decode map key: %w", err)
			return false
		}
		var k K
		if err := json.Unmarshal(kb, &k); err != nil {
			walkErr = fmt.Errorf("immut: decode map key %s: %w", key.String(), err)
			return false
		}
		var v V
		if err := json.Unmarshal([]byte(value.Raw), &v); err != nil {
			walkErr = fmt.Errorf("immut: decode map value for key %s: %w", key.String(), err)
			return false
		}
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
		return true
	})
	if walkErr != nil {
		return walkErr
	}
	*m = Map[K, V, C, RC]{mode: modeShared, shared: newSharedMap[K, V, C, RC](dedupPairs(pairs))}
	return nil
}

// MarshalJSON encodes the content as a JSON string.
func (s String[C, RC]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Str())
}

// UnmarshalJSON decodes a JSON string into the owned form.
func (s *String[C, RC]) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("immut: decode string: %w", err)
	}
	*s = MakeOwnedString[C, RC](v)
	return nil
}
