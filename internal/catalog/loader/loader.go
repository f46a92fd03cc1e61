package loader

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vbonduro/amblitz/internal/catalog"
	"github.com/vbonduro/amblitz/internal/domain"
)

// ErrInvalidDocument is wrapped by Load when the document does not match the
// catalog schema.
var ErrInvalidDocument = errors.New("invalid catalog document")

const schemaURL = "projects.schema.json"

//go:embed projects.schema.json
var schemaJSON []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Load reads the catalog document from src, validates it and returns the
// resulting Catalog.
func Load(ctx context.Context, src Source) (*catalog.Catalog, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.Error("failed to close catalog source", "location", src.Location(), "error", err)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes a raw catalog document.
func Parse(data []byte) (*catalog.Catalog, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var list domain.ProjectList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return catalog.New(list.Projects), nil
}
