package request

import (
	"fmt"
	"linkpago/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("payment_status", validatePaymentStatus)
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	return entities.PaymentStatus(fl.Field().String()).Valid()
}
