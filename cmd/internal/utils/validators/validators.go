package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// New returns a validator with every custom tag of the API registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// Register installs "nospaces" and "nodupes" on validate, and makes
// reported field names follow the JSON names of the payload.
func Register(validate *validator.Validate) error {
	validate.RegisterTagNameFunc(jsonName)

	if err := validate.RegisterValidation("nospaces", NoWhiteSpaces); err != nil {
		return err
	}
	return validate.RegisterValidation("nodupes", NoDupes)
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
