package payload

import (
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
)

// TimeLayout is the upstream timestamp format: ISO-8601 with an explicit offset
// ("2023-11-01T00:00:00+00:00" or "...Z"). Fractional seconds are accepted.
const TimeLayout = time.RFC3339

// ParseTime is the single timestamp parser used by every model.
func ParseTime(raw string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, eris.Wrapf(ErrMalformedDate, "%q", raw)
	}
	return t, nil
}

// Optional builds a *T from the object under key, or returns nil when the key is
// absent, null or an empty object. Once the object is present every key build
// requires must be there.
func Optional[T any](o Object, key string, build func(Object) (T, error)) (*T, error) {
	object, err := o.OptionalObject(key)
	if err != nil || object == nil {
		return nil, err
	}

	value, err := build(*object)
	if err != nil {
		return nil, eris.Wrapf(err, "key %q", key)
	}
	return &value, nil
}

// Required builds a T from the object under key.
func Required[T any](o Object, key string, build func(Object) (T, error)) (T, error) {
	var zero T

	object, err := o.Object(key)
	if err != nil {
		return zero, err
	}

	value, err := build(object)
	if err != nil {
		return zero, eris.Wrapf(err, "key %q", key)
	}
	return value, nil
}

// List builds one T per element of the array under key. A missing array yields
// an empty slice.
func List[T any](o Object, key string, build func(Object) (T, error)) ([]T, error) {
	elements, err := o.Array(key)
	if err != nil {
		return nil, err
	}

	values, err := Each(elements, build)
	if err != nil {
		return nil, eris.Wrapf(err, "key %q", key)
	}
	return values, nil
}

// Each builds one T per raw element, preserving order.
func Each[T any](elements []json.RawMessage, build func(Object) (T, error)) ([]T, error) {
	values := make([]T, 0, len(elements))
	for i, element := range elements {
		object, err := ParseObject(element)
		if err != nil {
			return nil, eris.Wrapf(err, "index %d", i)
		}

		value, err := build(object)
		if err != nil {
			return nil, eris.Wrapf(err, "index %d", i)
		}
		values = append(values, value)
	}
	return values, nil
}

// Decode parses raw as an object and hands it to build.
func Decode[T any](raw json.RawMessage, build func(Object) (T, error)) (T, error) {
	var zero T

	object, err := ParseObject(raw)
	if err != nil {
		return zero, err
	}
	return build(object)
}

// DecodeList parses raw as an array of objects. nil raw yields an empty slice.
func DecodeList[T any](raw json.RawMessage, build func(Object) (T, error)) ([]T, error) {
	if raw == nil {
		return []T{}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, eris.Wrap(ErrMalformedPayload, "expected a JSON array")
	}
	return Each(elements, build)
}
