package outcome

import "context"

// MapAsync is Map with a step that may block. The step runs in its own
// goroutine and only for a success.
func MapAsync[V, W, E any](ctx context.Context, o Outcome[V, E], f func(context.Context, V) W) *Pending[W, E] {
	if o.IsFailure() {
		return Resolve(Failure[W](o.err))
	}
	return Go(ctx, func(ctx context.Context) Outcome[W, E] {
		return Success[W, E](f(ctx, o.value))
	})
}

// MapFailureAsync is MapFailure with a step that may block.
func MapFailureAsync[V, E, F any](ctx context.Context, o Outcome[V, E], f func(context.Context, E) F) *Pending[V, F] {
	if o.IsSuccess() {
		return Resolve(Success[V, F](o.value))
	}
	return Go(ctx, func(ctx context.Context) Outcome[V, F] {
		return Failure[V](f(ctx, o.err))
	})
}

// BindAsync is Bind with a step that may block.
func BindAsync[V, W, E any](ctx context.Context, o Outcome[V, E], f func(context.Context, V) Outcome[W, E]) *Pending[W, E] {
	if o.IsFailure() {
		return Resolve(Failure[W](o.err))
	}
	return Go(ctx, func(ctx context.Context) Outcome[W, E] {
		return f(ctx, o.value)
	})
}

// MatchAsync is Match with handlers that may block. Only the handler for the
// current variant runs.
func MatchAsync[V, E, R any](ctx context.Context, o Outcome[V, E], onSuccess func(context.Context, V) R, onFailure func(context.Context, E) R) *Task[R] {
	if o.IsSuccess() {
		return Go(ctx, func(ctx context.Context) R { return onSuccess(ctx, o.value) })
	}
	return Go(ctx, func(ctx context.Context) R { return onFailure(ctx, o.err) })
}

// then awaits p once and hands the resolved Outcome to f inside a new task.
// Cancellation while awaiting p completes the new task with that error and
// f is not called.
func then[V, E, R any](ctx context.Context, p *Pending[V, E], f func(context.Context, Outcome[V, E]) R) *Task[R] {
	return spawn(ctx, func(ctx context.Context) (R, error) {
		o, err := p.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(ctx, o), nil
	})
}

// ThenMap resolves p and applies Map.
func ThenMap[V, W, E any](ctx context.Context, p *Pending[V, E], f func(V) W) *Pending[W, E] {
	return then(ctx, p, func(_ context.Context, o Outcome[V, E]) Outcome[W, E] {
		return Map(o, f)
	})
}

// ThenMapAsync resolves p and applies MapAsync.
func ThenMapAsync[V, W, E any](ctx context.Context, p *Pending[V, E], f func(context.Context, V) W) *Pending[W, E] {
	return then(ctx, p, func(ctx context.Context, o Outcome[V, E]) Outcome[W, E] {
		return Map(o, func(v V) W { return f(ctx, v) })
	})
}

// ThenMapFailure resolves p and applies MapFailure.
func ThenMapFailure[V, E, F any](ctx context.Context, p *Pending[V, E], f func(E) F) *Pending[V, F] {
	return then(ctx, p, func(_ context.Context, o Outcome[V, E]) Outcome[V, F] {
		return MapFailure(o, f)
	})
}

// ThenMapFailureAsync resolves p and applies MapFailureAsync.
func ThenMapFailureAsync[V, E, F any](ctx context.Context, p *Pending[V, E], f func(context.Context, E) F) *Pending[V, F] {
	return then(ctx, p, func(ctx context.Context, o Outcome[V, E]) Outcome[V, F] {
		return MapFailure(o, func(e E) F { return f(ctx, e) })
	})
}

// ThenBind resolves p and applies Bind.
func ThenBind[V, W, E any](ctx context.Context, p *Pending[V, E], f func(V) Outcome[W, E]) *Pending[W, E] {
	return then(ctx, p, func(_ context.Context, o Outcome[V, E]) Outcome[W, E] {
		return Bind(o, f)
	})
}

// ThenBindAsync resolves p and applies BindAsync.
func ThenBindAsync[V, W, E any](ctx context.Context, p *Pending[V, E], f func(context.Context, V) Outcome[W, E]) *Pending[W, E] {
	return then(ctx, p, func(ctx context.Context, o Outcome[V, E]) Outcome[W, E] {
		return Bind(o, func(v V) Outcome[W, E] { return f(ctx, v) })
	})
}

// ThenMatch resolves p and applies Match.
func ThenMatch[V, E, R any](ctx context.Context, p *Pending[V, E], onSuccess func(V) R, onFailure func(E) R) *Task[R] {
	return then(ctx, p, func(_ context.Context, o Outcome[V, E]) R {
		return Match(o, onSuccess, onFailure)
	})
}

// ThenMatchAsync resolves p and applies MatchAsync.
func ThenMatchAsync[V, E, R any](ctx context.Context, p *Pending[V, E], onSuccess func(context.Context, V) R, onFailure func(context.Context, E) R) *Task[R] {
	return then(ctx, p, func(ctx context.Context, o Outcome[V, E]) R {
		return Match(o,
			func(v V) R { return onSuccess(ctx, v) },
			func(e E) R { return onFailure(ctx, e) },
		)
	})
}
