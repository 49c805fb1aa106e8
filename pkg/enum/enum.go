// Package enum registers the valid values of string-backed status types so
// they can be recovered from their database representation.
package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

type valueSet[T comparable] map[string]T

// New registers value as a member of its enum type and returns it, so a
// status can be declared as `var Active = enum.New(Status("active"))`.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	set, ok := registry[v.Type()].(valueSet[T])
	if !ok {
		set = valueSet[T]{}
		registry[v.Type()] = set
	}

	set[v.String()] = value
	return value
}

// ToEnum maps a raw string back to the registered member of T, or errors when
// the string was never registered.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	set, ok := registry[reflect.TypeOf(zero)].(valueSet[T])
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := set[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value, nil
}
