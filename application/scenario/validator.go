package scenario

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	"github.com/go-playground/validator/v10"
)

// Compile-time interface compliance check
var _ ports.ScenarioValidator = (*Validator)(nil)

// Validator checks scenarios with struct tags plus cross-field rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator reporting fields by their YAML names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns a *errors.ConfigError for the first problem found.
func (v *Validator) Validate(s *entities.Scenario) error {
	if s == nil {
		return &errors.ConfigError{Err: stdErrors.New("scenario is nil")}
	}

	if err := v.validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return &errors.ConfigError{Err: err}
	}

	names := make(map[string]struct{}, len(s.Processes))
	for _, p := range s.Processes {
		names[p.Name] = struct{}{}
	}

	for i, step := range s.Steps {
		if step.Process != "" {
			if _, ok := names[step.Process]; !ok {
				return &errors.ConfigError{
					Field: fmt.Sprintf("steps[%d].process", i),
					Err:   fmt.Errorf("unknown process %q", step.Process),
				}
			}
		}
		if step.Type != "" {
			if _, err := EncodeValue(step.Type, step.Value); err != nil {
				return &errors.ConfigError{Field: fmt.Sprintf("steps[%d].value", i), Err: err}
			}
		}
	}

	if s.Expect != nil {
		for i, a := range s.Expect.Actions {
			if !hostfuncs.Action(a).IsTransition() {
				return &errors.ConfigError{
					Field: fmt.Sprintf("expect.actions[%d]", i),
					Err:   fmt.Errorf("unknown timer action %q", a),
				}
			}
		}
	}
	return nil
}

// fieldError converts a validator failure into a ConfigError whose field
// path starts below the Scenario root.
func fieldError(fe validator.FieldError) *errors.ConfigError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	msg := fmt.Sprintf("failed on the %q rule", fe.Tag())
	if fe.Param() != "" {
		msg += fmt.Sprintf(" (%s)", fe.Param())
	}
	return &errors.ConfigError{Field: field, Err: stdErrors.New(msg)}
}
