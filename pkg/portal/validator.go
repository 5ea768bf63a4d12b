package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	Errors   map[string]any
	instance *validator.Validate
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

func GetDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	registerCustomValidations(abstract)

	return &Validator{
		Errors:   make(map[string]any),
		instance: abstract,
	}
}

func (v *Validator) Passes(data any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Errors = make(map[string]any)

	err := v.instance.Struct(data)
	if err == nil {
		return true, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.Errors["_"] = err.Error()

		return false, err
	}

	for _, field := range fieldErrors {
		v.Errors[field.Namespace()] = describe(field)
	}

	return false, fmt.Errorf("validator: %d invalid field(s): %w", len(fieldErrors), err)
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]any, len(v.Errors))
	for key, value := range v.Errors {
		out[key] = value
	}

	return out
}

func (v *Validator) GetErrorsAsJson() string {
	data, err := json.Marshal(v.GetErrors())
	if err != nil {
		return ""
	}

	return string(data)
}

func describe(field validator.FieldError) string {
	rule := field.Tag()
	if param := strings.TrimSpace(field.Param()); param != "" {
		rule += "=" + param
	}

	return fmt.Sprintf("value %q does not satisfy [%s]", fmt.Sprint(field.Value()), rule)
}
