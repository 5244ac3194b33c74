// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/models"
	"github.com/go-playground/validator/v10"
)

// Custom tags registered on the underlying validator.
const (
	tagEmailFormat      = "email_format"
	tagPasswordStrength = "password_strength"
)

// RecordValidator validates request bodies and domain records using
// struct tags (go-playground/validator) plus the account rules of this
// package.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator returns a Validator with the custom email and
// password rules registered and JSON field names in error reports.
func NewRecordValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation(tagEmailFormat, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(tagPasswordStrength, func(fl validator.FieldLevel) bool {
		return PasswordProblem(fl.Field().String()) == ""
	})

	return &RecordValidator{validate: v}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		if value == nil {
			return v.validateProfileUpdate(models.ProfileUpdate{})
		}
		return v.validateProfileUpdate(*value)
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	for _, fe := range violations {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		return translate(fe)
	}
	return nil
}

func (v *RecordValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	if update.IsEmpty() {
		return newFieldError("", app.MsgNoFieldsToUpdate, ErrNoFieldsToUpdate)
	}
	return nil
}

// translate turns a tag violation into the message shown to callers.
func translate(fe validator.FieldError) error {
	switch fe.Tag() {
	case tagEmailFormat:
		return newFieldError(fe.Field(), app.MsgInvalidEmailFormat, ErrInvalidEmail)
	case tagPasswordStrength:
		password, _ := fe.Value().(string)
		return newFieldError(fe.Field(), PasswordProblem(password), ErrWeakPassword)
	case "required":
		return newFieldError(fe.Field(), fmt.Sprintf("Field '%s' is required", fe.Field()), ErrMissingField)
	default:
		return newFieldError(fe.Field(), fmt.Sprintf("Field '%s' is invalid", fe.Field()), ErrInvalidField)
	}
}
