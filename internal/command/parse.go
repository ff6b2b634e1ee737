package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

const (
	sepCreate    = ','
	sepRelate    = '>'
	sepUpdate    = '@'
	prefixDelete = '-'
	wildcard     = "*"
)

var charset = regexp.MustCompile(`^[A-Z0-9 \t,>*@-]+$`)

// Parse turns one input line into a Command.
//
// Lines with characters outside the grammar, more than one separator, or a
// non-numeric headcount fail with ErrInvalidCommand. Malformed department
// names fail with hierarchy.ErrInvalidName and out-of-range headcounts with
// hierarchy.ErrInvalidHeadcount.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || !charset.MatchString(line) {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}

	sep, err := separator(line)
	if err != nil {
		return Command{}, err
	}

	switch sep {
	case sepCreate:
		name, headcount, err := parseAssignment(line, sep)
		if err != nil {
			return Command{}, err
		}
		return Create(name, headcount), nil

	case sepUpdate:
		name, headcount, err := parseAssignment(line, sep)
		if err != nil {
			return Command{}, err
		}
		return Update(name, headcount), nil

	case sepRelate:
		left, right := split(line, sep)
		superior, err := parseTarget(left)
		if err != nil {
			return Command{}, err
		}
		subordinate, err := parseName(right)
		if err != nil {
			return Command{}, err
		}
		return Relate(superior, subordinate), nil

	default:
		if line[0] == prefixDelete {
			name, err := parseName(strings.TrimSpace(line[1:]))
			if err != nil {
				return Command{}, err
			}
			return Delete(name), nil
		}
		name, err := parseName(line)
		if err != nil {
			return Command{}, err
		}
		return Query(name), nil
	}
}

// separator finds the single separator in line, or 0 if there is none.
func separator(line string) (byte, error) {
	var found byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case sepCreate, sepRelate, sepUpdate:
			if found != 0 {
				return 0, fmt.Errorf("%w: more than one separator in %q", ErrInvalidCommand, line)
			}
			found = c
		}
	}
	return found, nil
}

func split(line string, sep byte) (string, string) {
	left, right, _ := strings.Cut(line, string(sep))
	return strings.TrimSpace(left), strings.TrimSpace(right)
}

func parseAssignment(line string, sep byte) (string, int, error) {
	left, right := split(line, sep)
	name, err := parseName(left)
	if err != nil {
		return "", 0, err
	}
	headcount, err := parseHeadcount(right)
	if err != nil {
		return "", 0, err
	}
	return name, headcount, nil
}

func parseTarget(s string) (Target, error) {
	if s == wildcard {
		return TargetWildcard, nil
	}
	name, err := parseName(s)
	if err != nil {
		return Target{}, err
	}
	return Named(name), nil
}

func parseName(s string) (string, error) {
	if s == "" || strings.ContainsAny(s, wildcard+string(prefixDelete)) {
		return "", fmt.Errorf("%w: missing or misplaced department name", ErrInvalidCommand)
	}
	if err := hierarchy.ValidateName(s); err != nil {
		return "", err
	}
	return s, nil
}

func parseHeadcount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: headcount %q is not a number", ErrInvalidCommand, s)
	}
	if err := hierarchy.ValidateHeadcount(n); err != nil {
		return 0, err
	}
	return n, nil
}
