package registry

import (
	"sort"
	"sync"

	"github.com/silverdr/inspect/pkg/errors"
)

// Registry stores items under unique names.
type Registry[T any] interface {
	// Register adds an item. Registering under a taken name fails with
	// ALREADY_EXISTS.
	Register(name string, item T) error

	// Get retrieves an item, failing with NOT_FOUND when absent.
	Get(name string) (T, error)

	// Remove deletes an item, failing with NOT_FOUND when absent.
	Remove(name string) error

	// Has reports whether a name is taken.
	Has(name string) bool

	// List returns all registered names, sorted.
	List() []string

	// Count returns the number of registered items.
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry.
func New[T any]() Registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.items[name]; taken {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", name)
	}
	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%q is not registered", name)
	}
	return item, nil
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return errors.Newf(errors.ErrNotFound, "%q is not registered", name)
	}
	delete(r.items, name)
	return nil
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
