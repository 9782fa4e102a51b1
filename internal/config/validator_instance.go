package config

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ISODate is the layout of dates written in gallery documents.
const ISODate = "2006-01-02"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	layoutProbe = time.Date(2024, time.November, 23, 0, 0, 0, 0, time.UTC)

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// validatorInstance returns the shared validator, configured on first use.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("go_layout", func(fl validator.FieldLevel) bool {
			return IsDateLayout(fl.Field().String())
		})

		_ = v.RegisterValidation("month_layout", func(fl validator.FieldLevel) bool {
			return IsMonthLayout(fl.Field().String())
		})

		_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(ISODate, fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := ParseWeekday(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// IsDateLayout reports whether layout is a Go time layout that keeps the
// year, month and day of a date through formatting and parsing.
func IsDateLayout(layout string) bool {
	if strings.TrimSpace(layout) == "" {
		return false
	}
	parsed, err := time.Parse(layout, layoutProbe.Format(layout))
	if err != nil {
		return false
	}
	y, m, d := parsed.Date()
	return y == layoutProbe.Year() && m == layoutProbe.Month() && d == layoutProbe.Day()
}

// IsMonthLayout reports whether layout is a Go time layout that keeps the
// year and month through formatting and parsing. Calendar headers use it.
func IsMonthLayout(layout string) bool {
	if strings.TrimSpace(layout) == "" {
		return false
	}
	parsed, err := time.Parse(layout, layoutProbe.Format(layout))
	if err != nil {
		return false
	}
	return parsed.Year() == layoutProbe.Year() && parsed.Month() == layoutProbe.Month()
}

// ParseWeekday reads an English weekday name, case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
