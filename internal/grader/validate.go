package grader

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var envelopeDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"success": map[string]any{"type": "boolean"},
		"error":   map[string]any{"type": []any{"string", "null"}},
		"data":    map[string]any{"type": []any{"object", "null"}},
	},
}

var reportDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"total_score": map[string]any{"type": "number"},
		"grades": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "number"},
		},
		"explanations": map[string]any{
			"type":                 []any{"object", "null"},
			"additionalProperties": map[string]any{"type": []any{"string", "null"}},
		},
		"timings": map[string]any{
			"type":                 []any{"object", "null"},
			"additionalProperties": map[string]any{"type": "number"},
		},
	},
	"required": []any{"total_score", "grades"},
}

var (
	compileOnce    sync.Once
	envelopeSchema *jsonschema.Schema
	reportSchema   *jsonschema.Schema
	compileErr     error
)

func compileSchemas() error {
	compileOnce.Do(func() {
		envelopeSchema, compileErr = compileSchema("envelope", envelopeDefinition)
		if compileErr != nil {
			return
		}
		reportSchema, compileErr = compileSchema("report", reportDefinition)
	})
	return compileErr
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(defBytes, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource %s: %w", name, err)
	}
	return c.Compile(url)
}

// decodeEnvelope turns a 2xx response body into a Report or one of the
// grading error types.
func decodeEnvelope(raw []byte) (*Report, error) {
	if err := compileSchemas(); err != nil {
		return nil, fmt.Errorf("compile grading schemas: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &InvalidResponseError{Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := envelopeSchema.Validate(parsed); err != nil {
		return nil, &InvalidResponseError{Body: raw, Err: fmt.Errorf("envelope: %w", err)}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &InvalidResponseError{Body: raw, Err: err}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &GradingError{Message: msg}
	}

	data := parsed.(map[string]any)["data"]
	if data == nil {
		return nil, &InvalidResponseError{Body: raw, Err: fmt.Errorf("success response without data")}
	}
	if err := reportSchema.Validate(data); err != nil {
		return nil, &InvalidResponseError{Body: raw, Err: fmt.Errorf("report: %w", err)}
	}

	var report Report
	if err := json.Unmarshal(env.Data, &report); err != nil {
		return nil, &InvalidResponseError{Body: raw, Err: err}
	}
	return &report, nil
}

// errorDetail extracts the service's error text from a non-2xx body, if
// the body happens to be an envelope.
func errorDetail(raw []byte) string {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Error
}
