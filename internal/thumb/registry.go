package thumb

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Operation is the signature every plugin operation must have.
type Operation func(ctx context.Context, j *Job, args map[string]any) (any, error)

// Plugin contributes named operations to a Registry.
type Plugin interface {
	Name() string
	Operations() map[string]Operation
}

// ErrDuplicateOperation is returned when an imported plugin provides an
// operation name that is already registered.
var ErrDuplicateOperation = errors.New("operation already registered")

// Registry records imported plugins and the operations they provide.
type Registry struct {
	imported []Plugin
	ops      map[string]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Import appends p to the imported plugins and registers its operations.
// The registry is left unchanged if any operation is rejected.
func (r *Registry) Import(p Plugin) error {
	if p == nil {
		return errors.New("cannot import nil plugin")
	}

	ops := p.Operations()
	for name, op := range ops {
		if name == "" {
			return fmt.Errorf("plugin %s: empty operation name", p.Name())
		}
		if op == nil {
			return fmt.Errorf("plugin %s: operation %s is nil", p.Name(), name)
		}
		if _, ok := r.ops[name]; ok {
			return fmt.Errorf("plugin %s: %w: %s", p.Name(), ErrDuplicateOperation, name)
		}
	}

	for name, op := range ops {
		r.ops[name] = op
	}
	r.imported = append(r.imported, p)
	return nil
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Imported returns the imported plugins in import order.
func (r *Registry) Imported() []Plugin {
	out := make([]Plugin, len(r.imported))
	copy(out, r.imported)
	return out
}

// ImportedFunctions returns a copy of the registered operations.
func (r *Registry) ImportedFunctions() map[string]Operation {
	out := make(map[string]Operation, len(r.ops))
	for name, op := range r.ops {
		out[name] = op
	}
	return out
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PluginFunc adapts a name and operation set into a Plugin.
type PluginFunc struct {
	PluginName string
	Ops        map[string]Operation
}

func (p PluginFunc) Name() string { return p.PluginName }

func (p PluginFunc) Operations() map[string]Operation { return p.Ops }
