package validation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string       `json:"status" example:"fail"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// BindError is returned by BindJSON when the body is malformed or breaks a
// binding rule. Fields is empty for syntax and type errors.
type BindError struct {
	Fields []FieldError
	Err    error
}

func (e *BindError) Error() string {
	return e.Err.Error()
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Has reports whether field failed, optionally restricted to one rule.
func (e *BindError) Has(field string, rules ...string) bool {
	for _, fe := range e.Fields {
		if fe.Field != field {
			continue
		}
		if len(rules) == 0 {
			return true
		}
		for _, r := range rules {
			if fe.Rule == r {
				return true
			}
		}
	}
	return false
}

// Response renders e with the given message.
func (e *BindError) Response(message string) ErrorResponse {
	fields := e.Fields
	if len(fields) == 0 {
		fields = []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: e.Err.Error(),
			},
		}
	}

	return ErrorResponse{
		Status:  StatusFail,
		Message: message,
		Errors:  fields,
	}
}

// BindJSON decodes the request body into dst and runs its binding rules.
// Unlike the handlers it serves, it never writes a response.
func BindJSON(c *gin.Context, dst any) *BindError {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &BindError{Fields: formatValidationErrors(verrs), Err: err}
	}

	return &BindError{Err: err}
}

func formatValidationErrors(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return fields
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "ltefield":
		return field + " must not be greater than " + toJSONFieldName(fe.Param())
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
