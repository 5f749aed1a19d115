package result

import "github.com/LerianStudio/lib-chainassert/chainassert/violation"

// Result holds either a success value of type T or a failure value of type E.
// The zero value is a success holding the zero T.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err returns a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// From converts a (value, error) pair. A non-nil err yields a failure.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}

	return Ok[T, error](v)
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool { return r.failed }

// Value returns the success value and whether r is a success.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, !r.failed
}

// Failure returns the failure value and whether r is a failure.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, r.failed
}

// Unpack returns both payloads; the one not matching the tag is the zero value.
// For Result[T, error] this is the conventional (T, error) pair.
func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.err
}

// String renders r as success(v) or failure(e).
func (r Result[T, E]) String() string {
	if r.failed {
		return "failure(" + violation.FormatValue(r.err) + ")"
	}

	return "success(" + violation.FormatValue(r.value) + ")"
}

// Map applies f to a success value. Failures pass through and f is not called.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}

	return Ok[U, E](f(r.value))
}

// MapErr applies f to a failure value. Successes pass through and f is not called.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.failed {
		return Err[T](f(r.err))
	}

	return Ok[T, F](r.value)
}

// AndThen applies f to a success value and returns its Result.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.failed {
		return Err[U](r.err)
	}

	return f(r.value)
}
