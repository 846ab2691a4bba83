package session

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requiredKeys maps struct fields to their canonical key names, in the
// order missing keys are reported.
var requiredKeys = []struct {
	field string
	key   string
}{
	{"PDFURL", "pdfUrl"},
	{"FormationName", "formationName"},
	{"CertID", "certId"},
}

// MissingParamsError reports the required session parameters that were
// absent, in canonical order.
type MissingParamsError struct {
	Keys []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("missing required parameters: %s", strings.Join(e.Keys, ", "))
}

// Validate checks that the required identifying fields are present.
// Optional fields never cause failure; their absence only disables
// personalization downstream.
func Validate(p Params) error {
	err := validator.New().Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate session parameters: %w", err)
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	missing := make([]string, 0, len(requiredKeys))
	for _, rk := range requiredKeys {
		if failed[rk.field] {
			missing = append(missing, rk.key)
		}
	}
	return &MissingParamsError{Keys: missing}
}
