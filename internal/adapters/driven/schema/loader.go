// Package schema loads schema documents into domain form. JSON is the
// native format; YAML is accepted for hand-maintained schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

// document mirrors the schema file shape: a "fields" sequence where each
// field may carry a "digital-land" extension block.
type document struct {
	Fields []fieldDocument `json:"fields" yaml:"fields"`
}

type fieldDocument struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Format string `json:"format" yaml:"format"`
	Extras extras `json:"digital-land" yaml:"digital-land"`
}

type extras struct {
	Precision int32    `json:"precision" yaml:"precision"`
	Strip     []string `json:"strip" yaml:"strip"`
}

// Load reads a schema document and builds the domain schema, resolving
// field kinds and compiling strip patterns up front. Any defect in the
// document is a structural failure.
func Load(path string) (*domain.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidSchema, path, err)
	}

	fields := make([]domain.Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		field, err := domain.NewField(fd.Name, fd.Type, fd.Format, fd.Extras.Precision, fd.Extras.Strip)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return domain.NewSchema(fields)
}
