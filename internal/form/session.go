// Package form owns one salary form session: it normalizes the raw text of
// edited fields, re-validates and re-derives on every change, and exposes
// the values a renderer needs.
package form

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iwvelando/salary-calculator/internal/salary"
	"github.com/iwvelando/salary-calculator/pkg/validation"
)

// ErrUnknownField is returned when a raw value targets no editable field.
var ErrUnknownField = errors.New("unknown field")

// Session holds the input, derived result and validation messages of one
// form. It is not safe for concurrent use; each form owns its own Session.
type Session struct {
	input      salary.Input
	result     salary.Result
	violations validation.Tree
}

// New starts a session from initial and computes its first result.
func New(initial salary.Input) *Session {
	s := &Session{input: initial}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.violations = salary.Validate(s.input)
	s.result = salary.Derive(s.input)
}

// Update handles one edit of the field at path: raw is normalized, stored
// and the result and messages are recomputed before Update returns. When
// raw cannot be normalized the field keeps its previous value.
func (s *Session) Update(path, raw string) error {
	if _, ok := salary.LookupField(path); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}

	value, err := salary.ParseNumber(raw)
	if err != nil {
		return fmt.Errorf("field %s: %w", path, err)
	}

	s.input.Set(path, value)
	s.recompute()
	return nil
}

// Apply updates every field present in raw, in field declaration order.
// Fields that fail keep their value; all failures are joined in the
// returned error.
func (s *Session) Apply(raw map[string]string) error {
	var errs []error
	for _, f := range salary.Fields() {
		text, ok := raw[f.Path]
		if !ok {
			continue
		}
		if err := s.Update(f.Path, text); err != nil {
			errs = append(errs, err)
		}
	}

	var unknown []string
	for path := range raw {
		if _, ok := salary.LookupField(path); !ok {
			unknown = append(unknown, path)
		}
	}
	sort.Strings(unknown)
	for _, path := range unknown {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, path))
	}

	return errors.Join(errs...)
}

// Input returns a copy of the current input.
func (s *Session) Input() salary.Input {
	return s.input
}

// Result returns the result derived from the current input.
func (s *Session) Result() salary.Result {
	return s.result
}

// Messages returns the current validation messages in field order.
func (s *Session) Messages() []string {
	return s.violations.Messages()
}

// Valid reports whether the current input has no validation messages.
func (s *Session) Valid() bool {
	return s.violations.Empty()
}
