// Package outcome provides a two-variant success/failure container and the
// combinators used to build short-circuiting command pipelines.
package outcome

import "fmt"

type variant uint8

const (
	unset variant = iota
	success
	failure
)

// Outcome holds exactly one of a success value V or a failure value E.
// The zero value holds neither and every accessor on it panics.
type Outcome[V, E any] struct {
	tag   variant
	value V
	err   E
}

// Success returns an Outcome in the success variant.
func Success[V, E any](v V) Outcome[V, E] {
	return Outcome[V, E]{tag: success, value: v}
}

// Failure returns an Outcome in the failure variant.
func Failure[V, E any](e E) Outcome[V, E] {
	return Outcome[V, E]{tag: failure, err: e}
}

// FromResult adapts a (value, error) pair. A nil error is a success.
func FromResult[V any](v V, err error) Outcome[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}

func (o Outcome[V, E]) check() {
	if o.tag == unset {
		panic("outcome: use of uninitialized Outcome")
	}
}

// IsSuccess reports whether o is in the success variant.
func (o Outcome[V, E]) IsSuccess() bool {
	o.check()
	return o.tag == success
}

// IsFailure reports whether o is in the failure variant.
func (o Outcome[V, E]) IsFailure() bool {
	o.check()
	return o.tag == failure
}

// Value returns the success payload. It panics on a failure.
func (o Outcome[V, E]) Value() V {
	o.check()
	if o.tag != success {
		panic(fmt.Sprintf("outcome: Value called on failure (%v)", o.err))
	}
	return o.value
}

// Err returns the failure payload. It panics on a success.
func (o Outcome[V, E]) Err() E {
	o.check()
	if o.tag != failure {
		panic("outcome: Err called on success")
	}
	return o.err
}

// Get destructures o. Exactly one of the first two results is meaningful,
// selected by ok.
func (o Outcome[V, E]) Get() (v V, e E, ok bool) {
	o.check()
	return o.value, o.err, o.tag == success
}

func (o Outcome[V, E]) String() string {
	switch o.tag {
	case success:
		return fmt.Sprintf("Success(%v)", o.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", o.err)
	default:
		return "Outcome(<unset>)"
	}
}

// Map replaces the success payload with f(value). Failures pass through and
// f is not called.
func Map[V, W, E any](o Outcome[V, E], f func(V) W) Outcome[W, E] {
	if o.IsFailure() {
		return Failure[W](o.err)
	}
	return Success[W, E](f(o.value))
}

// MapFailure is the mirror of Map for the failure payload.
func MapFailure[V, E, F any](o Outcome[V, E], f func(E) F) Outcome[V, F] {
	if o.IsSuccess() {
		return Success[V, F](o.value)
	}
	return Failure[V](f(o.err))
}

// Bind chains a fallible step. On failure f is not called and the failure
// is returned as is.
func Bind[V, W, E any](o Outcome[V, E], f func(V) Outcome[W, E]) Outcome[W, E] {
	if o.IsFailure() {
		return Failure[W](o.err)
	}
	return f(o.value)
}

// Match applies onSuccess or onFailure depending on the variant and returns
// its result.
func Match[V, E, R any](o Outcome[V, E], onSuccess func(V) R, onFailure func(E) R) R {
	if o.IsSuccess() {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}
