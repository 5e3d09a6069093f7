// Package validation checks form payloads and renders the first failure as a
// Russian user-facing message.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/noosflare/pkg/errors"
	"github.com/noah-isme/noosflare/pkg/plural"
)

// Custom tags.
const (
	TagEmail    = "email_at"
	TagAccepted = "accepted"
)

// User-facing messages shared by the forms.
const (
	MsgFillAllFields    = "Пожалуйста, заполните все поля"
	MsgInvalidEmail     = "Введите корректный email"
	MsgPasswordMismatch = "Пароли не совпадают"
	MsgAcceptTerms      = "Примите условия использования"
	MsgInvalidChoice    = "Выберите значение из списка"
)

// priority orders failures: a missing field is reported before a malformed one.
var priority = []string{"required", TagEmail, "len", "min", "eqfield", TagAccepted, "oneof"}

// Overrides lets a payload replace the default message for specific tags.
type Overrides interface {
	ValidationMessages() map[string]string
}

// Validator wraps go-playground/validator with Russian translations.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator with the custom tags and translations registered.
func New() *Validator {
	locale := ru.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator(locale.Locale())

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "@")
	})
	_ = validate.RegisterValidation(TagAccepted, func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})

	v := &Validator{validate: validate, translator: translator}
	v.register("required", MsgFillAllFields, nil)
	v.register(TagEmail, MsgInvalidEmail, nil)
	v.register("eqfield", MsgPasswordMismatch, nil)
	v.register(TagAccepted, MsgAcceptTerms, nil)
	v.register("oneof", MsgInvalidChoice, nil)
	v.register("len", "Введите {0}-значный код", func(fe validator.FieldError) string {
		return fe.Param()
	})
	v.register("min", "Пароль должен содержать минимум {0}", func(fe validator.FieldError) string {
		n, err := strconv.Atoi(fe.Param())
		if err != nil {
			return fe.Param()
		}
		return plural.CharacterForms.Format(n)
	})
	return v
}

func (v *Validator) register(tag, text string, param func(validator.FieldError) string) {
	_ = v.validate.RegisterTranslation(
		tag, v.translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			var args []string
			if param != nil {
				args = append(args, param(fe))
			}
			s, err := t.T(tag, args...)
			if err != nil {
				return text
			}
			return s
		},
	)
}

// Check validates payload and returns a VALIDATION_ERROR carrying the message
// of the most significant failure, or nil.
func (v *Validator) Check(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "invalid validation payload")
	}

	fe := mostSignificant(fieldErrs)
	message := fe.Translate(v.translator)
	if o, ok := payload.(Overrides); ok {
		if custom, found := o.ValidationMessages()[fe.Tag()]; found {
			message = custom
		}
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, message)
}

func mostSignificant(errs validator.ValidationErrors) validator.FieldError {
	for _, tag := range priority {
		for _, fe := range errs {
			if fe.Tag() == tag {
				return fe
			}
		}
	}
	return errs[0]
}
