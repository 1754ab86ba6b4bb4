package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError - ошибка валидации с картой "поле" -> "сообщение"
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator настраивает движок валидации gin (binding-теги)
// и переводит его ошибки в сообщения для клиента
type Validator struct {
	validate *validator.Validate
}

// New настраивает движок, которым gin проверяет binding-теги:
// регистрирует кастомные правила и имена полей из JSON-тегов
func New() *Validator {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		v = validator.New()
	}

	// Используем JSON-теги как имена полей в сообщениях об ошибках,
	// чтобы клиент видел имена в том виде, в каком он их отправлял.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate выполняет валидацию структуры по binding-тегам.
// Если есть ошибки, возвращает *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	return v.Translate(v.validate.Struct(i))
}

// Translate превращает ошибку движка валидации в *ValidationError.
// Прочие ошибки (например, синтаксис JSON) возвращаются как есть.
func (v *Validator) Translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	customErrors := make(map[string]string)
	for _, fieldErr := range validationErrors {
		customErrors[fieldErr.Field()] = messageForTag(fieldErr)
	}

	return &ValidationError{Errors: customErrors}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "is-user-role":
		return "is not a valid user role"
	case "is-appointment-status":
		return "is not a valid appointment status"
	case "is-consultation-mode":
		return "is not a valid consultation mode"
	case "is-gender":
		return "is not a valid gender"
	case "datetime":
		return fmt.Sprintf("must match the format %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
