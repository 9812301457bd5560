package service

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseDifficulty(fl.Field().String())
			return ok
		})
		// Tags are short words like "Fitness" or "Environment", spaces allowed inside
		validate.RegisterValidation("interest_tag", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" || len(value) > 32 {
				return false
			}
			for i, char := range value {
				if char == ' ' && i > 0 && i < len(value)-1 {
					continue
				}
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct runs struct tags validation, wrapping failures into ErrValidation
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return fmt.Errorf("validation unexpected error: %w", err)
}
