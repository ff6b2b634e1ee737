package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/seed"
)

// ExecuteLine parses and executes one line of the command language.
func (e *Engine) ExecuteLine(ctx context.Context, line string) (*Outcome, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		e.log(ctx, "parse", "", err)
		return nil, err
	}
	return e.Execute(ctx, cmd)
}

// Execute dispatches a parsed command to the matching engine operation.
// Each operation runs as its own critical section.
func (e *Engine) Execute(ctx context.Context, cmd command.Command) (*Outcome, error) {
	out := &Outcome{Command: cmd}
	var err error

	switch cmd.Kind {
	case command.KindCreate:
		out.Department, err = e.Create(ctx, &CreateRequest{Name: cmd.Name, Headcount: cmd.Headcount})
	case command.KindRelate:
		out.Relation, err = e.Relate(ctx, &RelateRequest{Superior: cmd.Superior, Subordinate: cmd.Name})
	case command.KindUpdate:
		out.Department, err = e.UpdateHeadcount(ctx, &UpdateRequest{Name: cmd.Name, Headcount: cmd.Headcount})
	case command.KindDelete:
		err = e.Delete(ctx, &DeleteRequest{Name: cmd.Name})
	case command.KindQuery:
		out.Relation, err = e.Describe(ctx, cmd.Name)
	default:
		err = fmt.Errorf("%w: unknown command kind %d", command.ErrInvalidCommand, cmd.Kind)
		e.log(ctx, cmd.Kind.String(), cmd.Name, err)
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplySeed builds the organization described by doc. It stops at the first
// command that fails; departments created before that point remain.
func (e *Engine) ApplySeed(ctx context.Context, doc *seed.Document) error {
	cmds, err := doc.Commands()
	if err != nil {
		return fmt.Errorf("invalid seed document: %w", err)
	}
	for _, cmd := range cmds {
		if _, err := e.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("failed to apply seed command %q: %w", cmd.String(), err)
		}
	}
	return nil
}
