package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/orgcount/internal/hierarchy"
	"github.com/danieljhkim/orgcount/internal/registry"
)

// Create registers a new department. The department starts unattached with
// no root.
func (e *Engine) Create(ctx context.Context, req *CreateRequest) (*DepartmentResult, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result, err := e.create(req)
	e.log(ctx, "create", req.Name, err)
	return result, err
}

func (e *Engine) create(req *CreateRequest) (*DepartmentResult, error) {
	if err := hierarchy.ValidateHeadcount(req.Headcount); err != nil {
		return nil, err
	}
	exists, err := e.registry.Exists(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", registry.ErrDuplicateName, req.Name)
	}

	// A failed registration must leave the forest untouched.
	id := hierarchy.NodeID(e.forest.Len())
	if err := e.registry.Register(registry.NewEntry(req.Name, id, e.clock.Now())); err != nil {
		return nil, fmt.Errorf("failed to register department: %w", err)
	}
	if got, err := e.forest.NewNode(req.Name, req.Headcount); err != nil {
		return nil, fmt.Errorf("failed to add department %s: %w", req.Name, err)
	} else if got != id {
		return nil, fmt.Errorf("department %s got node %d, registered as %d", req.Name, got, id)
	}

	return e.department(req.Name)
}

// UpdateHeadcount changes a department's own headcount and refreshes the
// totals of every superior.
func (e *Engine) UpdateHeadcount(ctx context.Context, req *UpdateRequest) (*DepartmentResult, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result, err := e.updateHeadcount(req)
	e.log(ctx, "update", req.Name, err)
	return result, err
}

func (e *Engine) updateHeadcount(req *UpdateRequest) (*DepartmentResult, error) {
	id, err := e.resolve(req.Name)
	if err != nil {
		return nil, err
	}
	if err := e.forest.UpdateHeadcount(id, req.Headcount); err != nil {
		return nil, fmt.Errorf("failed to update headcount of %s: %w", req.Name, err)
	}
	return e.department(req.Name)
}

// Delete refuses to delete a root department. Deleting any other department
// is not supported and returns ErrDeleteUnsupported; the organization is
// never changed.
func (e *Engine) Delete(ctx context.Context, req *DeleteRequest) error {
	unlock, err := e.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	err = e.delete(req)
	e.log(ctx, "delete", req.Name, err)
	return err
}

func (e *Engine) delete(req *DeleteRequest) error {
	id, err := e.resolve(req.Name)
	if err != nil {
		return err
	}
	n, err := e.forest.Node(id)
	if err != nil {
		return fmt.Errorf("failed to read department %s: %w", req.Name, err)
	}
	if n.IsRoot {
		return fmt.Errorf("%w: %s", ErrRootCannotBeDeleted, req.Name)
	}
	return fmt.Errorf("%w: %s", ErrDeleteUnsupported, req.Name)
}
