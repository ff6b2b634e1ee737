// Package command parses the line-oriented department command language.
//
// Grammar (whitespace around tokens is ignored):
//
//	NAME, HEADCOUNT        create a department
//	SUPERIOR>SUBORDINATE   attach SUBORDINATE under SUPERIOR
//	*>NAME                 promote NAME to root
//	NAME@HEADCOUNT         change a department's headcount
//	-NAME                  delete a department
//	NAME                   query a department
package command

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCommand indicates a line that does not match any command form.
var ErrInvalidCommand = errors.New("invalid command, check the manual")

// Kind identifies the command form.
type Kind int

const (
	KindCreate Kind = iota + 1
	KindRelate
	KindUpdate
	KindDelete
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindRelate:
		return "relate"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Target is the superior side of a relation: a named department or the
// wildcard meaning "make the subordinate a root".
type Target struct {
	Name     string
	Wildcard bool
}

// TargetWildcard is the "*" superior.
var TargetWildcard = Target{Wildcard: true}

// Named returns a Target referring to the department name.
func Named(name string) Target {
	return Target{Name: name}
}

func (t Target) String() string {
	if t.Wildcard {
		return wildcard
	}
	return t.Name
}

// Command is one parsed line.
type Command struct {
	Kind Kind

	// Name is the department the command acts on. For KindRelate it is the
	// subordinate.
	Name string

	// Headcount is set for KindCreate and KindUpdate.
	Headcount int

	// Superior is set for KindRelate.
	Superior Target
}

// String renders the command in canonical form; parsing the result yields
// the same command.
func (c Command) String() string {
	switch c.Kind {
	case KindCreate:
		return c.Name + string(sepCreate) + " " + strconv.Itoa(c.Headcount)
	case KindRelate:
		return c.Superior.String() + string(sepRelate) + c.Name
	case KindUpdate:
		return c.Name + string(sepUpdate) + strconv.Itoa(c.Headcount)
	case KindDelete:
		return string(prefixDelete) + c.Name
	case KindQuery:
		return c.Name
	default:
		return fmt.Sprintf("<%s>", c.Kind)
	}
}

// Create builds a create command.
func Create(name string, headcount int) Command {
	return Command{Kind: KindCreate, Name: name, Headcount: headcount}
}

// Relate builds a relate command.
func Relate(superior Target, subordinate string) Command {
	return Command{Kind: KindRelate, Name: subordinate, Superior: superior}
}

// Update builds an update command.
func Update(name string, headcount int) Command {
	return Command{Kind: KindUpdate, Name: name, Headcount: headcount}
}

// Delete builds a delete command.
func Delete(name string) Command {
	return Command{Kind: KindDelete, Name: name}
}

// Query builds a query command.
func Query(name string) Command {
	return Command{Kind: KindQuery, Name: name}
}
