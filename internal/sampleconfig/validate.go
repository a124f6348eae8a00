package sampleconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sampleconfig.schema.json
var documentSchema []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func documentValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("sampleconfig.schema.json", bytes.NewReader(documentSchema)); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("sampleconfig.schema.json")
	})
	return compiled, compileErr
}

// Validate checks a JSON-encoded SampleConfig against the document schema the
// renderer expects.
func Validate(data []byte) error {
	schema, err := documentValidator()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid sample config: %w", err)
	}
	return nil
}
