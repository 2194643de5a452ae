package gateway

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shareit/internal/platform/apperr"
)

// RegisterValidators installs the custom binding validators on gin's
// validator engine. Must run once before the routes are served.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("future", futureTime)
}

// notblank rejects strings that are present but whitespace-only. Combined
// with omitempty it is the optional-field counterpart of required.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// future requires a timestamp strictly after now.
func futureTime(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

func bodyFor(err error) apperr.Response {
	return apperr.Body(err)
}

func bindErrorBody(err error) apperr.Response {
	return apperr.Body(apperr.Invalid(validationMessage(err)))
}

// validationMessage flattens validator errors into one readable detail line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	var b strings.Builder
	for i, fe := range verrs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field())
		b.WriteString(": failed ")
		b.WriteString(fe.Tag())
		b.WriteString(" validation")
	}
	return b.String()
}
