package orgconfig

import (
	"fmt"
	"strings"
)

// OrgMissingError indicates that no organization id was supplied, or that
// the mapping itself could not be obtained. Both collapse into the same
// terminal class: the caller has no valid partial-content reaction.
type OrgMissingError struct {
	Available []string
}

func (e *OrgMissingError) Error() string {
	if len(e.Available) == 0 {
		return "no organization id supplied and no mapping available"
	}
	return fmt.Sprintf("no organization id supplied (known: %s)", strings.Join(e.Available, ", "))
}

// OrgNotFoundError indicates the supplied organization id is absent from
// the mapping.
type OrgNotFoundError struct {
	OrgID     string
	Available []string
}

func (e *OrgNotFoundError) Error() string {
	return fmt.Sprintf("organization %q not found (known: %s)", e.OrgID, strings.Join(e.Available, ", "))
}

// SchemaError indicates the mapping document does not match the expected
// schema.
type SchemaError struct {
	Errors []FieldError
}

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("organization mapping schema violation:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}
