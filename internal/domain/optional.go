package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field used by partial updates: a field can be
// absent from the request (Set=false), explicitly null (Set=true,
// Valid=false), or carry a value (Set=true, Valid=true). Absent fields leave
// the stored value untouched; explicit null clears a nullable field.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional representing an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}
