package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationFailure builds a VALIDATION failure whose context names each
// rejected field and the rule it broke.
func validationFailure(op envelope.Operation, err error) *envelope.Failure {
	ctx := envelope.Context{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			ctx[fe.Field()] = fe.Tag()
		}
	} else {
		ctx["body"] = err.Error()
	}

	return envelope.New(op).Failure(envelope.CodeValidation, ctx)
}

// decodeAndValidate decodes the JSON body of r into dst and validates it.
func decodeAndValidate(r *http.Request, op envelope.Operation, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return envelope.New(op).Failure(envelope.CodeValidation, envelope.Context{"body": "invalid json"})
	}
	if err := validate.Struct(dst); err != nil {
		return validationFailure(op, err)
	}
	return nil
}
