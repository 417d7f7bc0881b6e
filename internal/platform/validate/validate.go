// Package validate wraps a shared go-playground validator with the
// project's custom tags registered.
package validate

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		// "clock" accepts 24h "HH:MM" strings.
		_ = instance.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil
		})
	})
	return instance
}

// Struct validates s against its `validate` struct tags.
func Struct(s any) error {
	return get().Struct(s)
}
