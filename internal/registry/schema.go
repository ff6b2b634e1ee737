package registry

import (
	"time"

	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

// Entry is the registry record for one department.
type Entry struct {
	// Name is the unique department name
	Name string `json:"name"`

	// ID addresses the department in the hierarchy forest
	ID hierarchy.NodeID `json:"id"`

	// RegisteredAt is when the department was created
	RegisteredAt time.Time `json:"registeredAt"`
}

// NewEntry creates an Entry for a freshly created node.
func NewEntry(name string, id hierarchy.NodeID, now time.Time) Entry {
	return Entry{
		Name:         name,
		ID:           id,
		RegisteredAt: now,
	}
}
