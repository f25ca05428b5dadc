// Package optional provides Value, a result that is either present (Some) or absent (None).
// The range scanners return it so that an empty input is visible in the type instead of
// hiding behind a zero value.
package optional

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

var errMissingValueField = errors.New("optional: missing 'value' field")

// Value represents a value that may or may not be present.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All yields the value if present, so a Value can be ranged over.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking on None.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// OrElse returns o if it is non-empty, otherwise alternative.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// Equals reports whether both Values are None, or both are Some with values equal under eq.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map returns Some(f(value)) for Some, and None for None.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// MarshalJSON implements json.Marshaler.
// None is marshaled as null, Some(value) is marshaled as {"value": ...}.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": o.value})
}

// UnmarshalJSON implements json.Unmarshaler.
// Keys other than "value" are ignored and may hold any JSON.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	raw, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}

	*o = Some(value)

	return nil
}

// MarshalYAML implements yaml.Marshaler using the same shape as the JSON encoding.
func (o Value[T]) MarshalYAML() (any, error) {
	if !o.isSet {
		return nil, nil //nolint:nilnil
	}

	return map[string]T{"value": o.value}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null node never reaches it: yaml.v3
// leaves the field untouched, and the zero Value is already None.
// Keys other than "value" are ignored and may hold any YAML.
func (o *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	var wrapper map[string]yaml.Node
	if err := node.Decode(&wrapper); err != nil {
		return err
	}

	valueNode, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	var value T
	if err := valueNode.Decode(&value); err != nil {
		return err
	}

	*o = Some(value)

	return nil
}
