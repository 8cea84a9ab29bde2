package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MetaValidationErrors is the meta key under which field errors are attached
const MetaValidationErrors = "validation_errors"

// ValidationBuilder collects field level problems found at an import boundary
// and turns them into a single InvalidArgument error.
type ValidationBuilder struct {
	fields map[string][]string
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Required records field when value is blank
func (vb *ValidationBuilder) Required(field, value string) *ValidationBuilder {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
	return vb
}

// Range records field when value falls outside [minValue, maxValue]
func (vb *ValidationBuilder) Range(field string, value, minValue, maxValue int) *ValidationBuilder {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
	return vb
}

func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns nil when nothing was recorded. Fields are reported in sorted
// order so messages are stable.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(vb.fields[name], ", "))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta(MetaValidationErrors, vb.fields)
}
