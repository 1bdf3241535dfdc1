package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance. Field names in
// validation errors are the env keys, taken from the `env` struct tag.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("env"), ",", 2)[0]
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// checkConstraints applies the declared presence and range rules to a
// coerced Config. The first violation, in field declaration order, is
// reported as a ConfigError; later violations are irrelevant because the
// load is fatal anyway.
func checkConstraints(c *Config) error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	return translateFieldError(verrs[0])
}

func translateFieldError(fe validator.FieldError) *ConfigError {
	key := fe.Field()
	if i := strings.Index(key, "["); i >= 0 {
		key = key[:i]
	}
	value := fmt.Sprintf("%v", fe.Value())

	switch fe.Tag() {
	case "required":
		return missingKey(key)
	case "url":
		return coercionFailure(key, value, "an absolute URL", nil)
	case "gt":
		return outOfRange(key, value, "greater than "+fe.Param())
	case "gte":
		return outOfRange(key, value, "at least "+fe.Param())
	case "lte":
		return outOfRange(key, value, "at most "+fe.Param())
	default:
		return &ConfigError{Kind: OutOfRangeValue, Key: key, Value: value, Message: "violates " + fe.Tag()}
	}
}
