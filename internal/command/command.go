package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"rgit/internal/args"
	"rgit/internal/outcome"
)

// Report is the success payload of a command.
type Report struct {
	Command Identifier
	Path    string
	Message string
}

// Implementation executes one catalog command. Execute may block on I/O and
// must report every expected failure through the returned Outcome.
type Implementation interface {
	Identifier() Identifier
	Execute(ctx context.Context, seq args.Sequence) outcome.Outcome[Report, error]
}

var (
	ErrNotInCatalog = errors.New("identifier is not in the command catalog")
	ErrAlreadyBound = errors.New("identifier already has an implementation")
)

// Registry binds catalog identifiers to at most one implementation each.
type Registry struct {
	impls map[Identifier]Implementation
}

// NewRegistry returns a registry with nothing bound.
func NewRegistry() *Registry {
	return &Registry{impls: make(map[Identifier]Implementation)}
}

// Register binds impl under its declared identifier.
func (r *Registry) Register(impl Implementation) error {
	id := impl.Identifier()
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrNotInCatalog, id)
	}
	if _, ok := r.impls[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, id)
	}
	r.impls[id] = impl
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (r *Registry) MustRegister(impls ...Implementation) *Registry {
	for _, impl := range impls {
		if err := r.Register(impl); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup returns the implementation bound to id. ok is false both for
// catalog members with no binding and for identifiers outside the catalog.
func (r *Registry) Lookup(id Identifier) (Implementation, bool) {
	impl, ok := r.impls[id]
	return impl, ok
}

// Bound lists identifiers with an implementation, in catalog order.
func (r *Registry) Bound() []Identifier {
	return lo.Filter(all, func(id Identifier, _ int) bool {
		_, ok := r.impls[id]
		return ok
	})
}

// Unbound lists catalog identifiers that have no implementation yet.
func (r *Registry) Unbound() []Identifier {
	return lo.Without(all, r.Bound()...)
}
