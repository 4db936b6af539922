package node

// Value is an optional field value. The zero Value is unset.
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Get returns the held value and whether it was set.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// IsSet reports whether a value was assigned.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Or returns the held value, or fallback when unset.
func (v Value[T]) Or(fallback T) T {
	if !v.set {
		return fallback
	}
	return v.value
}
