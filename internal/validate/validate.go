// Package validate checks a proposed loan application and reports every
// violation as a human-readable message. All rules are evaluated; nothing
// short-circuits after the first failure.
package validate

import (
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"coopcredit/internal/phone"
	"coopcredit/pkg/types"
)

const (
	phoneDigits  = 10
	minBirthYear = 1940
	adultAge     = 18
	termStep     = 6
)

var v *validator.Validate

func init() {
	v = validator.New()

	// Decimals validate as float64 so the numeric range tags apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(civil.Date); ok {
			return d.In(time.UTC)
		}
		return nil
	}, civil.Date{})

	mustRegister("phone10", validPhone)
	mustRegister("adult", validBirthDate)
	mustRegister("termstep", validTermStep)
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register %q validation: %w", tag, err))
	}
}

// Check validates one submission and returns the violations in field order.
// An empty result means the input may be built and persisted. Check never
// fails: any input degrades to a list of messages.
func Check(in types.ApplicationInput) []string {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"the application could not be validated"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func validPhone(fl validator.FieldLevel) bool {
	return len(phone.Digits(fl.Field().String())) == phoneDigits
}

// validBirthDate requires an applicant born on or after 1940-01-01 and at
// least 18 years old today. The zero date fails the lower bound, so a
// missing birth date reports this violation too.
func validBirthDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	min := time.Date(minBirthYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Now().UTC().AddDate(-adultAge, 0, 0)

	return !t.Before(min) && !t.After(max)
}

func validTermStep(fl validator.FieldLevel) bool {
	return fl.Field().Int()%termStep == 0
}
