package outcome

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Task is a write-once future. It is completed by exactly one goroutine and
// may be awaited by any number of readers once complete.
type Task[T any] struct {
	done     chan struct{}
	val      T
	err      error
	panicked *PanicError
}

// Pending is an Outcome whose computation has not completed yet.
type Pending[V, E any] = Task[Outcome[V, E]]

// PanicError carries a panic raised inside a task body to the goroutine that
// awaits it.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("outcome: task panicked: %v\n%s", p.Value, p.Stack)
}

// Go runs fn in a new goroutine and returns a Task for its result.
func Go[T any](ctx context.Context, fn func(context.Context) T) *Task[T] {
	return spawn(ctx, func(ctx context.Context) (T, error) {
		return fn(ctx), nil
	})
}

// Resolve returns a Task that is already complete with v.
func Resolve[T any](v T) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), val: v}
	close(t.done)
	return t
}

func spawn[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.panicked = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		t.val, t.err = fn(ctx)
	}()
	return t
}

// Done is closed once the task has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await blocks until the task completes or ctx is done. A non-nil error is
// either ctx.Err() or the cancellation observed by an upstream task; it is
// never a failure payload. A panic in the task body is re-raised here.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
	default:
		select {
		case <-t.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	if t.panicked != nil {
		panic(t.panicked)
	}
	return t.val, t.err
}
