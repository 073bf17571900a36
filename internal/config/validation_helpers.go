package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// convertValidationError normalizes validator errors into uikit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return uikiterrors.NewValidationError(field, msg, err)
	}

	return uikiterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.VRT.AppCodeEnv" into "vrt.appcodeenv".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, len(parts))
	for i, part := range parts {
		lowered[i] = strings.ToLower(part)
	}
	return strings.Join(lowered, ".")
}
