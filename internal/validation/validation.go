package validation

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// TranslateError converts validation failures into readable messages. Errors
// that did not come from the validator produce no messages.
func TranslateError(err error, trans ut.Translator) (errs []string) {
	if err == nil {
		return nil
	}

	validationErrors := validator.ValidationErrors{}

	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, e.Translate(trans))
		}
	}

	return errs
}

// Check validates the given struct and folds every translated failure into a
// single error.
func Check(validate *validator.Validate, trans ut.Translator, value any) error {
	err := validate.Struct(value)

	if err == nil {
		return nil
	}

	if msgs := TranslateError(err, trans); len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "; "))
	}

	return errors.Wrap(err, "failed to validate")
}
