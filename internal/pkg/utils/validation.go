package utils

import (
	"benefits-portal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	monthRegex     = regexp.MustCompile(constvars.RegexMonthYYYYMM)
	dateRegex      = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timeOfDayRegex = regexp.MustCompile(constvars.RegexTimeHHMM)
	phoneRegex     = regexp.MustCompile(constvars.RegexPhoneNumberLoose)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("month", validateMonth)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
	validate.RegisterValidation("iso_datetime", validateISODatetime)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// IsValidMonth accepts YYYY-MM with a real month number.
func IsValidMonth(value string) bool {
	if !monthRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01", value)
	return err == nil
}

// IsValidDate accepts YYYY-MM-DD that is a real calendar date.
func IsValidDate(value string) bool {
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}

func IsValidTimeOfDay(value string) bool {
	if !timeOfDayRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

// ParseISODatetime accepts RFC3339 timestamps and the provider's offset form without a colon.
func ParseISODatetime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02T15:04:05-0700", value)
}

func validateMonth(fl validator.FieldLevel) bool {
	return IsValidMonth(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return IsValidTimeOfDay(fl.Field().String())
}

func validateISODatetime(fl validator.FieldLevel) bool {
	_, err := ParseISODatetime(fl.Field().String())
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
