// Package mapping populates and edits domain entities from raw request
// payloads, driven by a declarative per-entity field map. The engine is
// stateless: configuration, payload and target are explicit arguments, so a
// single Config value is safe for concurrent use once built.
package mapping

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Callback transforms a raw value before validation; callbacks run in
// declaration order and must be pure.
type Callback func(v interface{}) (interface{}, error)

// Field declares one mappable property: its payload key, transform pipeline,
// validation rules and a typed setter. A nil Assign is a configuration bug
// surfaced as ConfigError.
type Field[E any] struct {
	Name      string
	Optional  bool // lenient creation: skip silently when absent
	Callbacks []Callback
	Rules     []validation.Rule
	Assign    func(e *E, v interface{}) error
}

// Config is the immutable per-entity field map. Fields are processed in
// declaration order; the first failing field short-circuits, so earlier
// fields may already be applied when an error is returned — callers must not
// persist an entity after a mapping error.
type Config[E any] struct {
	Entity     string
	New        func() *E // entity constructor; nil means zero value
	Fields     []Field[E]
	EditDenied []string // fields never applied on update, e.g. "username"
}

// Create decodes the payload and populates a fresh entity. Every declared
// field must be present unless marked Optional.
func Create[E any](raw interface{}, cfg Config[E]) (*E, error) {
	payload, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	var e *E
	if cfg.New != nil {
		e = cfg.New()
	} else {
		e = new(E)
	}

	for _, f := range cfg.Fields {
		value, ok := payload[f.Name]
		if !ok {
			if f.Optional {
				continue
			}
			return e, &MissingFieldError{Field: f.Name, Entity: cfg.Entity}
		}

		if err := applyField(e, f, cfg.Entity, value); err != nil {
			return e, err
		}
	}

	return e, nil
}

// Update decodes the payload and applies it onto an existing entity. Fields
// in the editing-denied list are always skipped, as are fields absent from
// the payload or semantically blank (partial updates by design).
func Update[E any](raw interface{}, e *E, cfg Config[E]) error {
	payload, err := Decode(raw)
	if err != nil {
		return err
	}

	for _, f := range cfg.Fields {
		if editDenied(cfg.EditDenied, f.Name) {
			continue
		}

		value, ok := payload[f.Name]
		if !ok || IsBlank(value) {
			continue
		}

		if err := applyField(e, f, cfg.Entity, value); err != nil {
			return err
		}
	}

	return nil
}

func applyField[E any](e *E, f Field[E], entity string, value interface{}) error {
	var err error
	for _, cb := range f.Callbacks {
		value, err = cb(value)
		if err != nil {
			return &ValidationError{Field: f.Name, Message: err.Error()}
		}
	}

	if len(f.Rules) > 0 {
		if err := validation.Validate(value, f.Rules...); err != nil {
			return &ValidationError{Field: f.Name, Message: err.Error()}
		}
	}

	if f.Assign == nil {
		return &ConfigError{Field: f.Name, Entity: entity}
	}

	if err := f.Assign(e, value); err != nil {
		return &ValidationError{Field: f.Name, Message: err.Error()}
	}

	return nil
}

func editDenied(denied []string, name string) bool {
	for _, d := range denied {
		if d == name {
			return true
		}
	}
	return false
}
