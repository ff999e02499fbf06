package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrNotObject is returned when a JSON value expected to be an object is not one.
var ErrNotObject = errors.New("not a JSON object")

// Object is an ordered JSON object. The zero value is an empty object.
type Object struct {
	// keys holds field names in document order.
	keys []string
	// values holds the raw JSON value of every field.
	values map[string]json.RawMessage
}

// NewObject returns an empty object.
func NewObject() *Object {
	return new(Object)
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns field names in document order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Has reports whether the field exists.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]

	return ok
}

// Raw returns the raw JSON of a field.
func (o *Object) Raw(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]

	return raw, ok
}

// Decode unmarshals a field into v. It reports false without touching v
// when the field does not exist.
func (o *Object) Decode(key string, v any) (bool, error) {
	raw, ok := o.values[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}

	return true, nil
}

// Set stores v under key. An existing field keeps its position,
// a new one is appended.
func (o *Object) Set(key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	o.SetRaw(key, raw)

	return nil
}

// SetRaw stores raw JSON under key with the same ordering rules as Set.
func (o *Object) SetRaw(key string, raw json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = raw
}

// Delete removes a field if it exists.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}

	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// UnmarshalJSON implements json.Unmarshaler.
// Duplicate keys keep their first position and their last value.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	o.keys = nil
	o.values = make(map[string]json.RawMessage)

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return err
		}

		o.SetRaw(key, raw)
	}

	// Closing brace.
	_, err = dec.Token()

	return err
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := encode(key)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encode marshals v without HTML escaping, matching what package managers write.
func encode(v any) (json.RawMessage, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
