package option

import "github.com/LerianStudio/lib-chainassert/chainassert/violation"

// Option holds either a present value or nothing. The zero value is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From builds an Option from the comma-ok idiom:
//
//	v, ok := m[key]
//	opt := option.From(v, ok)
func From[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// FromPointer returns Some(*p), or None when p is nil.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the value, panicking like AssertPresent when it is absent.
func (o Option[T]) MustGet() T {
	if !o.ok {
		raisePresent(2, "MustGet")
	}

	return o.value
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}

	return o.value
}

// String renders the Option as present(v) or absent.
func (o Option[T]) String() string {
	if !o.ok {
		return "absent"
	}

	return "present(" + violation.FormatValue(o.value) + ")"
}

// Map applies f to a present value. An absent Option stays absent and f is not called.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return Some(f(o.value))
}

// AndThen applies f to a present value and returns its Option.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return f(o.value)
}
