package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators adds the decimal rules used in request DTOs to gin's validator:
// dgt0 (strictly positive) and dgte0 (zero or positive).
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		// Decimals are validated through their canonical string form.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		if err = v.RegisterValidation("dgt0", decimalSign(func(d decimal.Decimal) bool { return d.IsPositive() })); err != nil {
			return
		}
		err = v.RegisterValidation("dgte0", decimalSign(func(d decimal.Decimal) bool { return !d.IsNegative() }))
	})
	return err
}

func decimalSign(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d)
	}
}
