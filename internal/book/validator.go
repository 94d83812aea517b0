package book

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("finite", validateFinite)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// validateStruct runs the tag rules of s and reports the first failure.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Value:   fe.Value(),
		Message: message(fe.Field(), fe.Tag(), fe.Param()),
	}
}

// validateVar checks a single value against tag, naming it field in the error.
func validateVar(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: field, Value: value, Message: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message(field, fe.Tag(), fe.Param()),
	}
}

func message(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
