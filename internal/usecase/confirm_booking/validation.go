package confirm_booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError ошибка проверки контактов с сообщениями по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%v: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// normalizeContact обрезает пробелы во всех полях
func normalizeContact(c Contact) Contact {
	return Contact{
		Name:   strings.TrimSpace(c.Name),
		Mobile: strings.TrimSpace(c.Mobile),
		Email:  strings.TrimSpace(c.Email),
		Notes:  strings.TrimSpace(c.Notes),
	}
}

// validateContact проверяет имя (обязательно) и телефон (ровно 10 цифр)
func validateContact(c Contact) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len", "number":
		return "must be exactly 10 digits"
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}
