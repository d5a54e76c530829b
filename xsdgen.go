// Package xsdgen synthesizes sample XML documents that conform to an XSD
// schema: structure from the element/type graph, values from the schema's
// constraining facets. Generation is deterministic for a given schema and
// options, degrades gracefully on constraints it cannot satisfy, and always
// terminates, including on self-referential type graphs.
package xsdgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jacoelho/xsdgen/internal/loader"
	"github.com/jacoelho/xsdgen/internal/model"
)

// ErrNoRootElement indicates the schema declares no global elements, so
// there is nothing to generate. This is the one unrecoverable condition of
// the engine.
var ErrNoRootElement = errors.New("schema declares no global elements")

// ErrUnknownRootElement indicates the requested root element is not a
// global element of the schema.
var ErrUnknownRootElement = errors.New("unknown root element")

// Schema wraps a loaded schema with generation entry points.
type Schema struct {
	model *model.Schema
}

// Load loads a schema from the given filesystem and location.
func Load(fsys fs.FS, location string) (*Schema, error) {
	resolved, err := loader.Load(fsys, location)
	if err != nil {
		return nil, err
	}
	return &Schema{model: resolved}, nil
}

// LoadFile loads a schema from a file path.
func LoadFile(path string) (*Schema, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	return Load(os.DirFS(dir), base)
}

// Parse loads a schema from raw XSD bytes.
func Parse(data []byte) (*Schema, error) {
	resolved, err := loader.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Schema{model: resolved}, nil
}

// rootElement resolves the element generation starts from.
func (s *Schema) rootElement(name string) (*model.ElementDecl, error) {
	if s == nil || s.model == nil || len(s.model.Elements) == 0 {
		return nil, ErrNoRootElement
	}
	if name != "" {
		decl, ok := s.model.ElementByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRootElement, name)
		}
		return decl, nil
	}
	decl, err := s.model.RootElement(name)
	if err != nil {
		return nil, fmt.Errorf("select root element: %w", err)
	}
	return decl, nil
}

// GlobalElements returns the names of the schema's global elements in
// declaration order.
func (s *Schema) GlobalElements() []string {
	if s == nil || s.model == nil {
		return nil
	}
	names := make([]string, 0, len(s.model.Elements))
	for _, decl := range s.model.Elements {
		names = append(names, decl.Name.Local)
	}
	return names
}
