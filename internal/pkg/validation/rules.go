package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation limits
var (
	// PasswordMinLength is the minimum password length in bytes
	PasswordMinLength = 8

	// PasswordMaxLength is the bcrypt input limit in bytes
	PasswordMaxLength = 72

	// Accepted profile enumerations, compared case-insensitively
	Genders        = []string{"male", "female", "other"}
	PreferredModes = []string{"online", "offline", "hybrid"}
)

// Custom validator tags
const (
	TagEmail    = "lmsemail"
	TagPassword = "password"
	TagGender   = "gender"
	TagMode     = "mode"
)

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail accepts any address with a non-empty local part and domain, including
// single-label domains such as admin@localhost.
func IsEmail(value string) bool {
	v := NormalizeEmail(value)
	at := strings.Index(v, "@")
	if at <= 0 || at != strings.LastIndex(v, "@") || at == len(v)-1 {
		return false
	}
	return !strings.ContainsAny(v, " \t\r\n")
}

// IsPassword checks the byte length against bcrypt's limits
func IsPassword(value string) bool {
	n := len(value)
	return n >= PasswordMinLength && n <= PasswordMaxLength
}

func oneOfFold(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(value), a) {
			return true
		}
	}
	return false
}

// RegisterRules installs the custom tags on v and reports fields by their json name
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	rules := map[string]validator.Func{
		TagEmail: func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		},
		TagPassword: func(fl validator.FieldLevel) bool {
			return IsPassword(fl.Field().String())
		},
		TagGender: func(fl validator.FieldLevel) bool {
			return oneOfFold(fl.Field().String(), Genders)
		},
		TagMode: func(fl validator.FieldLevel) bool {
			return oneOfFold(fl.Field().String(), PreferredModes)
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
