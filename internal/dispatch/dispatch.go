// Package dispatch turns an argument sequence into the execution of one
// catalog command.
package dispatch

import (
	"context"

	"github.com/google/uuid"

	"rgit/internal/args"
	"rgit/internal/command"
	"rgit/internal/command/initcmd"
	"rgit/internal/ctxlog"
	"rgit/internal/failure"
	"rgit/internal/outcome"
)

// Dispatcher resolves command names against a Registry.
type Dispatcher struct {
	registry *command.Registry
}

// New returns a Dispatcher over registry. The registry is not copied.
func New(registry *command.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Default wires every command implementation that exists.
func Default() *Dispatcher {
	return New(command.NewRegistry().MustRegister(
		initcmd.Command{},
	))
}

// Registry exposes the bindings used by d.
func (d *Dispatcher) Registry() *command.Registry { return d.registry }

// Dispatch resolves seq.Command() against the catalog and the registry and
// runs the implementation asynchronously. seq must not be empty.
func (d *Dispatcher) Dispatch(ctx context.Context, seq args.Sequence) *outcome.Pending[command.Report, error] {
	log := ctxlog.FromContext(ctx).With("run", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, log)

	id := outcome.Bind(outcome.Success[string, error](seq.Command()), resolve)
	impl := outcome.Bind(id, d.lookup)
	done := outcome.BindAsync(ctx, impl, func(ctx context.Context, impl command.Implementation) outcome.Outcome[command.Report, error] {
		log.Debug("executing command", "command", impl.Identifier())
		return impl.Execute(ctx, seq)
	})
	return outcome.ThenMapFailure(ctx, done, func(err error) error {
		if failure.IsInformational(err) {
			log.Info("command finished without changes", "err", err)
		} else {
			log.Warn("command failed", "err", err)
		}
		return err
	})
}

func resolve(name string) outcome.Outcome[command.Identifier, error] {
	id, ok := command.Parse(name)
	if !ok {
		return outcome.Failure[command.Identifier](error(failure.New(failure.ErrUnknownCommand, name)))
	}
	return outcome.Success[command.Identifier, error](id)
}

func (d *Dispatcher) lookup(id command.Identifier) outcome.Outcome[command.Implementation, error] {
	impl, ok := d.registry.Lookup(id)
	if !ok {
		return outcome.Failure[command.Implementation](error(failure.New(failure.ErrNotImplemented, id.String())))
	}
	return outcome.Success[command.Implementation, error](impl)
}
