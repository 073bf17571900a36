package config

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("port", func(fl validator.FieldLevel) bool {
			return ValidPort(fl.Field().String())
		})

		_ = v.RegisterValidation("env_name", func(fl validator.FieldLevel) bool {
			return envNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidPort reports whether s is a TCP port number between 1 and 65535.
func ValidPort(s string) bool {
	port, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return port > 0 && port <= 65535
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return uikiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}
