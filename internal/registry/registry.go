// Package registry maps department names to their nodes in the hierarchy.
//
// The hierarchy never resolves names itself: callers look a department up
// here and hand the resulting NodeID to the forest. Duplicate and missing
// names are detected at this layer.
//
// Key components:
//   - Registry: Interface for registering and resolving departments
//   - Entry: The stored record (name, node, registration time)
//   - MemoryRegistry: In-process implementation used by the engine
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

var (
	// ErrDuplicateName indicates a department with the same name is already registered.
	ErrDuplicateName = errors.New("department name already exists, choose another name")

	// ErrNoSuchDepartment indicates the name is not registered.
	ErrNoSuchDepartment = errors.New("no such department, check the department name")
)

// Registry provides an interface for resolving department names.
type Registry interface {
	// List returns all entries in registration order.
	List() ([]Entry, error)

	// Exists checks if a department with the given name is registered.
	Exists(name string) (bool, error)

	// Register stores a new entry. Returns ErrDuplicateName if the name is taken.
	Register(entry Entry) error

	// Lookup resolves a name. Returns ErrNoSuchDepartment if it is not registered.
	Lookup(name string) (Entry, error)
}

// MemoryRegistry implements Registry with an in-memory map.
type MemoryRegistry struct {
	entries map[string]Entry
	order   []string
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		entries: make(map[string]Entry),
	}
}

// List returns all entries in registration order.
func (r *MemoryRegistry) List() ([]Entry, error) {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out, nil
}

// Exists checks if a department with the given name is registered.
func (r *MemoryRegistry) Exists(name string) (bool, error) {
	if err := hierarchy.ValidateName(name); err != nil {
		return false, err
	}
	_, ok := r.entries[name]
	return ok, nil
}

// Register stores a new entry.
func (r *MemoryRegistry) Register(entry Entry) error {
	exists, err := r.Exists(entry.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, entry.Name)
	}
	if entry.ID == hierarchy.NoNode {
		return fmt.Errorf("department %s has no node", entry.Name)
	}

	r.entries[entry.Name] = entry
	r.order = append(r.order, entry.Name)
	return nil
}

// Lookup resolves a name to its entry.
func (r *MemoryRegistry) Lookup(name string) (Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNoSuchDepartment, name)
	}
	return entry, nil
}

// Names returns the registered names sorted alphabetically.
func Names(r Registry) ([]string, error) {
	entries, err := r.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names, nil
}
