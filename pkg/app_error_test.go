package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo timeout")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: dynamo timeout", err.Error())
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, err.ToHTTPError())

	simple := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	assert.Nil(t, simple.Unwrap())
	assert.Equal(t, http.StatusNotFound, simple.HTTPStatus)
	assert.Equal(t, "PAYMENT_NOT_FOUND: Payment not found", simple.Error())
}
