package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchema is returned when a scene document does not match the scene schema.
var ErrSchema = errors.New("scene does not match schema")

//go:embed scene.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func sceneSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// validateDocument checks a raw scene document against the embedded schema.
func validateDocument(doc gojsonschema.JSONLoader) error {
	s, err := sceneSchema()
	if err != nil {
		return fmt.Errorf("failed to compile scene schema: %w", err)
	}
	result, err := s.Validate(doc)
	if err != nil {
		return fmt.Errorf("failed to validate scene: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
