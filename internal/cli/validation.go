package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// generateInput is the form-level view of a generate/more invocation.
// The service re-checks its own invariants; this only catches typos early
// with flag-named messages.
type generateInput struct {
	Category string `flag:"category" validate:"required"`
	Prefix   string `flag:"prefix" validate:"omitempty,printascii,max=64"`
	Count    int    `flag:"count" validate:"min=1,ltefield=MaxBatch"`
	MaxBatch int    `flag:"max_batch"`
}

type historyInput struct {
	Limit int `flag:"limit" validate:"min=0,max=1000"`
}

type inputValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	validatorOnce sync.Once
	inputs        *inputValidator
)

// getValidator returns the validator singleton with english messages keyed
// by flag names.
func getValidator() *inputValidator {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("flag"); name != "" {
				return name
			}
			return fld.Name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterTranslation("ltefield", trans,
			func(ut ut.Translator) error {
				return ut.Add("ltefield", "{0} must be at most the configured {1}", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T("ltefield", fe.Field(), "max_batch")
				return msg
			},
		)

		inputs = &inputValidator{validate: v, trans: trans}
	})
	return inputs
}

// validateInput checks s and joins every failure into one error.
func validateInput(s any) error {
	iv := getValidator()
	err := iv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(iv.trans))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}
