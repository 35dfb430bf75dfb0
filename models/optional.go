package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Optional holds a value that may be missing from an API response.
// Absent keys and JSON null both decode to an empty Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Get returns the value and whether it was present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether the value was set
func (o Optional[T]) Present() bool {
	return o.present
}

// OrElse returns the value, or fallback when it is missing
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// String formats the value for diagnostics, "N/A" when missing
func (o Optional[T]) String() string {
	if !o.present {
		return "N/A"
	}
	if t, ok := any(o.value).(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(o.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON implements json.Marshaler; missing values encode as null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
