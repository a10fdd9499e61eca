package model

import (
	"sort"
	"strings"
)

// ValidationError carries field-level messages from a form validation
// pass. Handlers re-render the form with Fields; the Error string is for
// logs only.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
