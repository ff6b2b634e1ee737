// Package seed reads organization documents that populate the engine at
// startup.
//
// A document lists departments first and relations second:
//
//	departments:
//	  - name: DEV
//	    headcount: 10
//	relations:
//	  - "*>DEV"
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/orgcount/internal/command"
)

//go:embed default.yaml
var defaultDocument []byte

// ErrInvalidRelation indicates a relations entry that is not a SUPERIOR>SUBORDINATE command.
var ErrInvalidRelation = errors.New("seed relation must have the form SUPERIOR>SUBORDINATE")

// Department is one entry of the departments list.
type Department struct {
	Name      string `yaml:"name"`
	Headcount int    `yaml:"headcount"`
}

// Document is a parsed seed file.
type Document struct {
	Departments []Department `yaml:"departments"`
	Relations   []string     `yaml:"relations"`
}

// Default returns the built-in organization: DEV as root with BACKEND,
// FRONTEND and DEVOPS under it, 80 people in total.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads a seed document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

// Commands converts the document into the commands that build it: every
// department is created before any relation is applied.
func (d *Document) Commands() ([]command.Command, error) {
	cmds := make([]command.Command, 0, len(d.Departments)+len(d.Relations))
	for _, dept := range d.Departments {
		cmds = append(cmds, command.Create(dept.Name, dept.Headcount))
	}
	for i, line := range d.Relations {
		cmd, err := command.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("relations[%d]: %w", i, err)
		}
		if cmd.Kind != command.KindRelate {
			return nil, fmt.Errorf("relations[%d] %q: %w", i, line, ErrInvalidRelation)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
