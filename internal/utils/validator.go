package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors        []ValidationErrorDetail `json:"errors"`
	Documentation string                  `json:"documentation"`
}

const DocumentationLink = "/swagger/index.html"

// BindAndValidate binds the request body to the given object and validates it.
// If binding or validation fails, it sends a 422 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors []ValidationErrorDetail

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fieldErrs):
		for _, e := range fieldErrs {
			field := getJSONTagName(obj, e.StructField())

			detail := ValidationErrorDetail{
				Field:    field,
				Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, e.Tag()),
				Expected: e.Param(),
				Received: e.Value(),
			}

			if detail.Expected == "" {
				detail.Expected = e.Tag()
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", field)
				detail.Expected = "non-empty value"
			case "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s characters long", field, e.Param())
				detail.Expected = fmt.Sprintf("min length %s", e.Param())
			case "max":
				detail.Message = fmt.Sprintf("Field '%s' must be at most %s characters long", field, e.Param())
				detail.Expected = fmt.Sprintf("max length %s", e.Param())
			}

			validationErrors = append(validationErrors, detail)
		}
	case errors.As(err, &typeErr):
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		})
	default:
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	c.JSON(http.StatusUnprocessableEntity, NewResponse(
		http.StatusUnprocessableEntity,
		"Invalid request parameters",
		ValidationErrorData{
			Errors:        validationErrors,
			Documentation: DocumentationLink,
		},
	))
	return false
}

// getJSONTagName maps a struct field name to the name clients send.
func getJSONTagName(obj interface{}, fieldName string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fieldName); ok {
		if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
			name, _, _ := strings.Cut(tag, ",")
			return name
		}
	}
	return fieldName
}
