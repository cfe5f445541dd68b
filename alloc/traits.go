package alloc

// Copier is implemented by element types which need more than a plain assignment
// to produce an independent copy of themselves.
//
// Copy may be declared on T or on *T.
type Copier[T any] interface {
	Copy() T
}

// Mover is implemented by element types which take part in relocation.
// Move is called on the source slot; it returns the relocated value and leaves
// the source in its moved-from state.
type Mover[T any] interface {
	Move() T
}

// Finalizer is implemented by element types which want to be notified when an
// element is destroyed. Finalize may be declared on T or on *T.
type Finalizer interface {
	Finalize()
}

// CopyValue copy-constructs a value from *v.
func CopyValue[T any](v *T) T {
	if c, ok := any(v).(Copier[T]); ok {
		return c.Copy()
	}
	return *v
}

// MoveValue move-constructs a value from *src. If T does not implement Mover,
// the value is transferred and *src is reset to the zero value.
func MoveValue[T any](src *T) T {
	if m, ok := any(src).(Mover[T]); ok {
		return m.Move()
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// Finalize calls the Finalizer hook of *slot, if present, and clears the slot.
// Clearing drops all references the element holds, making them collectable.
func Finalize[T any](slot *T) {
	if f, ok := any(slot).(Finalizer); ok {
		f.Finalize()
	}
	var zero T
	*slot = zero
}
