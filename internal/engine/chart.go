package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
	"github.com/danieljhkim/orgcount/internal/registry"
	"github.com/danieljhkim/orgcount/internal/seed"
)

// Chart returns every tree of the organization with per-department totals.
func (e *Engine) Chart(ctx context.Context) (*ChartResult, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries, err := e.registry.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	registered := make(map[hierarchy.NodeID]registry.Entry, len(entries))
	for _, entry := range entries {
		registered[entry.ID] = entry
	}

	result := &ChartResult{
		Session:     e.session.String(),
		Departments: len(entries),
		Trees:       []ChartNode{},
	}
	for _, top := range e.forest.Trees() {
		node, err := e.chartNode(top, registered)
		if err != nil {
			return nil, err
		}
		result.Trees = append(result.Trees, node)
	}
	return result, nil
}

func (e *Engine) chartNode(id hierarchy.NodeID, registered map[hierarchy.NodeID]registry.Entry) (ChartNode, error) {
	n, err := e.forest.Node(id)
	if err != nil {
		return ChartNode{}, fmt.Errorf("failed to read department: %w", err)
	}

	out := ChartNode{
		Name:         n.Name,
		Headcount:    n.Headcount,
		Total:        n.Aggregate,
		Root:         n.IsRoot,
		RegisteredAt: registered[id].RegisteredAt,
	}
	for _, child := range n.Children {
		c, err := e.chartNode(child, registered)
		if err != nil {
			return ChartNode{}, err
		}
		out.Children = append(out.Children, c)
	}
	return out, nil
}

// Export returns a seed document that rebuilds the current organization.
func (e *Engine) Export(ctx context.Context) (*seed.Document, error) {
	unlock, err := e.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries, err := e.registry.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	doc := &seed.Document{}
	for _, entry := range entries {
		n, err := e.forest.Node(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read department %s: %w", entry.Name, err)
		}
		doc.Departments = append(doc.Departments, seed.Department{Name: n.Name, Headcount: n.Headcount})
	}

	for _, top := range e.forest.Trees() {
		names := make(map[hierarchy.NodeID]string)
		err := e.forest.Walk(top, func(n hierarchy.Node, _ int) {
			names[n.ID] = n.Name
			if n.IsRoot {
				doc.Relations = append(doc.Relations, command.Relate(command.TargetWildcard, n.Name).String())
			}
			if n.HasParent() {
				doc.Relations = append(doc.Relations, command.Relate(command.Named(names[n.Parent]), n.Name).String())
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk organization: %w", err)
		}
	}
	return doc, nil
}
