package engine

import (
	"errors"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/config"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
	"github.com/danieljhkim/orgcount/internal/registry"
	"github.com/danieljhkim/orgcount/internal/seed"
)

var (
	// ErrRootCannotBeDeleted indicates an attempt to delete a root department.
	ErrRootCannotBeDeleted = errors.New("a root department cannot be deleted")

	// ErrDeleteUnsupported indicates a delete of a non-root department, which
	// is not implemented.
	ErrDeleteUnsupported = errors.New("deleting departments is not supported")
)

// known lists the errors whose text is shown to users as is.
var known = []error{
	hierarchy.ErrInvalidName,
	hierarchy.ErrInvalidHeadcount,
	hierarchy.ErrRootCannotBeSubordinated,
	hierarchy.ErrRootAlreadySet,
	hierarchy.ErrCycle,
	registry.ErrDuplicateName,
	registry.ErrNoSuchDepartment,
	command.ErrInvalidCommand,
	seed.ErrInvalidRelation,
	config.ErrInvalidConfig,
	ErrRootCannotBeDeleted,
	ErrDeleteUnsupported,
}

// UserMessage returns the message to show for err: the text of the first
// known error it wraps, or err's own text otherwise.
func UserMessage(err error) string {
	for _, target := range known {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
