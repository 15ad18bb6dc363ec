package script

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ValentinKolb/tinycoll/lib/store"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a script file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields or fails validation.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses and validates a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // reject typos like "step:" instead of "steps:"
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that required fields are present and consistent.
func Validate(s *Script) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScript)
	}

	kind, err := store.ParseKind(s.Store)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownStore, err)
	}

	switch s.Elements {
	case ElementsInt, ElementsString:
	default:
		return fmt.Errorf("%w: %q (expected int or string)", ErrUnknownElements, s.Elements)
	}

	if _, err := store.ParseOrder(s.Order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if s.Order != "" && kind != store.KindOrdered {
		return fmt.Errorf("%w: order is only supported by ordered stores", ErrInvalidScript)
	}
	if kind == store.KindChain && s.Duplicates != nil && !*s.Duplicates {
		return fmt.Errorf("%w: chain stores always accept duplicates", ErrInvalidScript)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: steps list is required and must be non-empty", ErrInvalidScript)
	}
	for i, step := range s.Steps {
		if err := validateStep(kind, step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	if s.Expect != nil && s.Expect.Capacity != nil && kind == store.KindChain {
		return fmt.Errorf("%w: chain stores have no capacity", ErrInvalidScript)
	}
	return nil
}

// validateStep validates a single step based on its operation.
func validateStep(kind store.Kind, step Step) error {
	needsItem := false
	switch step.Op {
	case OpInsert:
		needsItem = true
		if step.Index == nil && kind != store.KindOrdered {
			return fmt.Errorf("%w: index is required for insert", ErrInvalidScript)
		}
	case OpAppend, OpPrepend, OpRemove, OpRemoveAll:
		needsItem = true
	case OpContains:
		needsItem = true
		if step.Index != nil && step.Found != nil && !*step.Found {
			return fmt.Errorf("%w: index expectation conflicts with found: false", ErrInvalidScript)
		}
	case OpRemoveAt:
		if step.Index == nil {
			return fmt.Errorf("%w: index is required for remove_at", ErrInvalidScript)
		}
	case OpClear:
	case "":
		return fmt.Errorf("%w: op is required", ErrInvalidScript)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, step.Op)
	}

	if needsItem && step.Item == "" {
		return fmt.Errorf("%w: item is required for %s", ErrInvalidScript, step.Op)
	}
	if step.OK != nil {
		switch step.Op {
		case OpInsert, OpAppend, OpPrepend:
		default:
			return fmt.Errorf("%w: ok is not supported by %s", ErrInvalidScript, step.Op)
		}
	}
	if step.Found != nil && step.Op != OpContains {
		return fmt.Errorf("%w: found is only supported by contains", ErrInvalidScript)
	}
	return nil
}
