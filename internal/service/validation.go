package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pageza/recipe-api/backend/internal/model"
)

var fieldMessages = map[string]string{
	"title":        "Please add a title",
	"author":       "Please add an author",
	"difficulty":   "Please add a difficulty level",
	"prepTime":     "Please add preparation time",
	"cookTime":     "Please add cooking time",
	"ingredients":  "Please add ingredients",
	"instructions": "Please add instructions",
	"imageUrl":     "Please add an image URL",
}

func invalidDifficultyMessage() string {
	return "Difficulty must be one of " + model.DifficultyList()
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegisterValidation(v, "difficulty", func(fl validator.FieldLevel) bool {
		return model.Difficulty(fl.Field().String()).Valid()
	})
	return v
}

// mustRegisterValidation panics when tag cannot be registered
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// toValidationError turns validator output into the messages returned to clients
func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "difficulty" {
			messages = append(messages, invalidDifficultyMessage())
			continue
		}
		if msg, ok := fieldMessages[fe.Field()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fe.Error())
	}
	return &ValidationError{Messages: messages}
}
