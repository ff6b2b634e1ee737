package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/orgcount/internal/registry"
)

// Relate places the subordinate under the superior, or makes it a root when
// the superior is the wildcard. The result describes the subordinate after
// the change.
func (e *Engine) Relate(ctx context.Context, req *RelateRequest) (*RelationResult, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result, err := e.relate(req)
	e.log(ctx, "relate", req.Subordinate, err)
	return result, err
}

func (e *Engine) relate(req *RelateRequest) (*RelationResult, error) {
	sub, err := e.resolve(req.Subordinate)
	if err != nil {
		return nil, err
	}

	if req.Superior.Wildcard {
		if err := e.forest.SetAsRoot(sub); err != nil {
			return nil, fmt.Errorf("failed to make %s a root: %w", req.Subordinate, err)
		}
		return e.relation(req.Subordinate)
	}

	sup, err := e.resolve(req.Superior.Name)
	if err != nil {
		return nil, err
	}
	if err := e.forest.Attach(sup, sub); err != nil {
		return nil, fmt.Errorf("failed to place %s under %s: %w", req.Subordinate, req.Superior.Name, err)
	}
	return e.relation(req.Subordinate)
}

// Describe reports the department, the root of its organization (or its
// highest superior when there is no root) and the organization's total
// headcount.
func (e *Engine) Describe(ctx context.Context, name string) (*RelationResult, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result, err := e.relation(name)
	e.log(ctx, "query", name, err)
	return result, err
}

// TotalHeadcount returns the total headcount of the organization the
// department belongs to.
func (e *Engine) TotalHeadcount(ctx context.Context, name string) (int, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	id, err := e.resolve(name)
	if err != nil {
		return 0, err
	}
	total, err := e.forest.TotalHeadcount(id)
	if err != nil {
		return 0, fmt.Errorf("failed to total headcount for %s: %w", name, err)
	}
	return total, nil
}

// Departments returns every registered department name in alphabetical
// order.
func (e *Engine) Departments(ctx context.Context) ([]string, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return registry.Names(e.registry)
}
