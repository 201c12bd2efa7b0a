// Package validation holds the request rules for league records.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-z'-]{2,30}$`)
	teamNamePattern   = regexp.MustCompile(`^[A-Za-z.' -]{3,30}$`)
	playerIDPattern   = regexp.MustCompile(`^PLR\d{6}$`)
	teamIDPattern     = regexp.MustCompile(`^TM\d{6}$`)
)

// Validator checks request payloads against struct tags.
//
// Custom tags: personname, teamname, playerid, teamid.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "teamname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return strings.TrimSpace(name) != "" && teamNamePattern.MatchString(name)
	})
	mustRegister(v, "playerid", func(fl validator.FieldLevel) bool {
		return playerIDPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "teamid", func(fl validator.FieldLevel) bool {
		return teamIDPattern.MatchString(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct validates payload and returns a readable message on failure.
func (v *Validator) Struct(ctx context.Context, payload any) error {
	err := v.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Var validates a single value, e.g. a path parameter, against tag.
func (v *Validator) Var(ctx context.Context, name string, value any, tag string) error {
	if err := v.validate.VarCtx(ctx, value, tag); err != nil {
		return fmt.Errorf("%s is invalid", name)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 0 and 99", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
