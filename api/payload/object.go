// Package payload holds the primitive parsers every model in this module is
// built from. An Object is a decoded JSON object whose values stay raw until a
// typed accessor asks for them, so each model keeps its JSON-shape knowledge in
// its own parse function.
package payload

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
)

var (
	// ErrMalformedPayload is returned when a required key is missing or a present
	// key holds a value of the wrong shape.
	ErrMalformedPayload = eris.New("malformed payload")
	// ErrMalformedDate is returned when a timestamp does not match the upstream format.
	ErrMalformedDate = eris.New("malformed date")
)

var null = []byte("null")

// Object is an immutable view over a single JSON object.
type Object struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// ParseObject decodes raw into an Object. raw is retained verbatim and returned by Raw.
func ParseObject(raw json.RawMessage) (Object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Object{}, eris.Wrap(ErrMalformedPayload, "expected a JSON object")
	}

	return Object{raw: raw, fields: fields}, nil
}

// Raw returns the exact bytes the object was parsed from.
func (o Object) Raw() json.RawMessage {
	return o.raw
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	value, ok := o.fields[key]
	return ok && !isNull(value)
}

// Contains reports whether key is present at all, null included.
func (o Object) Contains(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Empty reports whether the object has no keys at all.
func (o Object) Empty() bool {
	return len(o.fields) == 0
}

// Field returns the raw value of a required key.
func (o Object) Field(key string) (json.RawMessage, error) {
	value, ok := o.fields[key]
	if !ok || isNull(value) {
		return nil, missing(key)
	}
	return value, nil
}

// OptionalField returns the raw value of key, or nil when it is absent or null.
func (o Object) OptionalField(key string) json.RawMessage {
	value, ok := o.fields[key]
	if !ok || isNull(value) {
		return nil
	}
	return value
}

func (o Object) String(key string) (string, error) {
	value, err := o.Field(key)
	if err != nil {
		return "", err
	}
	return decodeString(key, value)
}

// OptionalString returns nil when key is absent or null. An empty string is
// returned as-is; callers that treat "" as absent say so explicitly.
func (o Object) OptionalString(key string) (*string, error) {
	value := o.OptionalField(key)
	if value == nil {
		return nil, nil
	}

	s, err := decodeString(key, value)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Int accepts JSON numbers and numeric strings holding an integral value.
func (o Object) Int(key string) (int, error) {
	value, err := o.Field(key)
	if err != nil {
		return 0, err
	}
	return decodeInt(key, value)
}

// OptionalInt keeps zero distinct from absence.
func (o Object) OptionalInt(key string) (*int, error) {
	value := o.OptionalField(key)
	if value == nil {
		return nil, nil
	}

	i, err := decodeInt(key, value)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (o Object) Float(key string) (float64, error) {
	value, err := o.Field(key)
	if err != nil {
		return 0, err
	}

	var number json.Number
	if err := json.Unmarshal(value, &number); err != nil {
		return 0, wrongShape(key, "number")
	}

	f, err := number.Float64()
	if err != nil {
		return 0, wrongShape(key, "number")
	}
	return f, nil
}

func (o Object) Bool(key string) (bool, error) {
	value, err := o.Field(key)
	if err != nil {
		return false, err
	}

	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false, wrongShape(key, "boolean")
	}
	return b, nil
}

// OptionalBool returns false when key is absent or null.
func (o Object) OptionalBool(key string) (bool, error) {
	if !o.Has(key) {
		return false, nil
	}
	return o.Bool(key)
}

func (o Object) Time(key string) (time.Time, error) {
	s, err := o.String(key)
	if err != nil {
		return time.Time{}, err
	}

	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "key %q", key)
	}
	return t, nil
}

// OptionalTime returns nil when key is absent, null or an empty string.
func (o Object) OptionalTime(key string) (*time.Time, error) {
	s, err := o.OptionalString(key)
	if err != nil || s == nil || *s == "" {
		return nil, err
	}

	t, err := ParseTime(*s)
	if err != nil {
		return nil, eris.Wrapf(err, "key %q", key)
	}
	return &t, nil
}

func (o Object) Object(key string) (Object, error) {
	value, err := o.Field(key)
	if err != nil {
		return Object{}, err
	}

	object, err := ParseObject(value)
	if err != nil {
		return Object{}, eris.Wrapf(err, "key %q", key)
	}
	return object, nil
}

// OptionalObject returns nil when key is absent, null or an empty object.
func (o Object) OptionalObject(key string) (*Object, error) {
	value := o.OptionalField(key)
	if value == nil {
		return nil, nil
	}

	object, err := ParseObject(value)
	if err != nil {
		return nil, eris.Wrapf(err, "key %q", key)
	}
	if object.Empty() {
		return nil, nil
	}
	return &object, nil
}

// Array returns the elements of the array under key, or an empty slice when
// the key is absent or null.
func (o Object) Array(key string) ([]json.RawMessage, error) {
	value := o.OptionalField(key)
	if value == nil {
		return []json.RawMessage{}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(value, &elements); err != nil {
		return nil, wrongShape(key, "array")
	}
	if elements == nil {
		elements = []json.RawMessage{}
	}
	return elements, nil
}

// Strings is Array for string elements.
func (o Object) Strings(key string) ([]string, error) {
	value := o.OptionalField(key)
	if value == nil {
		return []string{}, nil
	}

	var elements []string
	if err := json.Unmarshal(value, &elements); err != nil {
		return nil, wrongShape(key, "array of strings")
	}
	if elements == nil {
		elements = []string{}
	}
	return elements, nil
}

// StringMap returns the string-valued object under key, or an empty map when
// the key is absent or null.
func (o Object) StringMap(key string) (map[string]string, error) {
	value := o.OptionalField(key)
	if value == nil {
		return map[string]string{}, nil
	}

	var m map[string]string
	if err := json.Unmarshal(value, &m); err != nil {
		return nil, wrongShape(key, "object of strings")
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

// Times parses every element of the string array under key, preserving order.
func (o Object) Times(key string) ([]time.Time, error) {
	values, err := o.Strings(key)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(values))
	for i, value := range values {
		t, err := ParseTime(value)
		if err != nil {
			return nil, eris.Wrapf(err, "key %q[%d]", key, i)
		}
		times = append(times, t)
	}
	return times, nil
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || bytes.Equal(bytes.TrimSpace(value), null)
}

func missing(key string) error {
	return eris.Wrapf(ErrMalformedPayload, "missing required key %q", key)
}

func wrongShape(key string, expected string) error {
	return eris.Wrapf(ErrMalformedPayload, "key %q is not a %s", key, expected)
}

func decodeString(key string, value json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", wrongShape(key, "string")
	}
	return s, nil
}

func decodeInt(key string, value json.RawMessage) (int, error) {
	var number json.Number
	if err := json.Unmarshal(value, &number); err != nil {
		return 0, wrongShape(key, "number")
	}

	if i, err := number.Int64(); err == nil {
		return int(i), nil
	}

	f, err := number.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, wrongShape(key, "integer")
	}
	return int(f), nil
}
