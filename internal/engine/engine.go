// Package engine provides the orchestration layer for orgcount.
//
// The engine sits between the CLI and the hierarchy. It resolves department
// names through the registry, applies commands to the forest, and turns the
// outcome into results the CLI can print or serialize.
//
// Key components:
//   - Engine: Main orchestrator, safe for use by several front ends at once
//   - Create/Relate/UpdateHeadcount/Delete: Department mutations
//   - Describe/TotalHeadcount: Queries
//   - Execute: Dispatches parsed commands
//   - Chart/Export: Whole-organization views
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/orgcount/internal/clock"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
	"github.com/danieljhkim/orgcount/internal/logging"
	"github.com/danieljhkim/orgcount/internal/registry"
)

// Engine orchestrates all orgcount operations.
// It is the main API surface called by the CLI.
type Engine struct {
	mu       sync.Mutex
	forest   *hierarchy.Forest
	registry registry.Registry
	clock    clock.Clock
	logger   *logrus.Entry
	session  uuid.UUID
}

// New creates an Engine over an empty forest. reg must not contain entries
// yet; every department is registered through the engine.
func New(reg registry.Registry, clk clock.Clock, logger *logrus.Logger) *Engine {
	session := uuid.New()
	return &Engine{
		forest:   hierarchy.New(),
		registry: reg,
		clock:    clk,
		logger:   logger.WithField("session", session.String()),
		session:  session,
	}
}

// Session identifies this engine in log output.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// resolve looks up the node for a department name.
func (e *Engine) resolve(name string) (hierarchy.NodeID, error) {
	entry, err := e.registry.Lookup(name)
	if err != nil {
		return hierarchy.NoNode, err
	}
	return entry.ID, nil
}

// department snapshots the named department.
func (e *Engine) department(name string) (*DepartmentResult, error) {
	id, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	n, err := e.forest.Node(id)
	if err != nil {
		return nil, fmt.Errorf("failed to read department %s: %w", name, err)
	}
	return &DepartmentResult{
		Name:      n.Name,
		Headcount: n.Headcount,
		Aggregate: n.Aggregate,
	}, nil
}

// relation describes the named department.
func (e *Engine) relation(name string) (*RelationResult, error) {
	id, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	rel, err := e.forest.Describe(id)
	if err != nil {
		return nil, fmt.Errorf("failed to describe department %s: %w", name, err)
	}
	return &RelationResult{Relation: rel}, nil
}

// begin takes the engine lock after checking ctx. The caller must call the
// returned function when done.
func (e *Engine) begin(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	return e.mu.Unlock, nil
}

// log records the outcome of a command against a department, using the
// logger carried by ctx when there is one.
func (e *Engine) log(ctx context.Context, kind, department string, err error) {
	entry := logging.FromContext(ctx, e.logger).WithFields(logrus.Fields{
		"session":    e.session.String(),
		"command":    kind,
		"department": department,
	})
	if err != nil {
		entry.WithError(err).Warn("command.rejected")
		return
	}
	entry.Debug("command.applied")
}
