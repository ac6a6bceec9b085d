package domain

import (
	"bytes"
	"encoding/json"
)

// Field is one slot of a sparse patch. It distinguishes three states:
// absent (key omitted), null (key present with JSON null) and a concrete value.
// The zero value is absent.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null returns a Field that explicitly clears the target.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

func (f Field[T]) Present() bool { return f.present }
func (f Field[T]) IsNull() bool  { return f.present && f.null }

// Value returns the carried value and whether there is one.
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked by encoding/json when the key exists,
// which is what makes "absent" observable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// apply overwrites a non-nullable destination. Null is treated as absent.
func (f Field[T]) apply(dst *T) {
	if v, ok := f.Value(); ok {
		*dst = v
	}
}

// applyOptional overwrites a nullable destination; null clears it.
func (f Field[T]) applyOptional(dst **T) {
	if !f.present {
		return
	}
	if f.null {
		*dst = nil
		return
	}
	v := f.value
	*dst = &v
}
