package usecase

import "errors"

var (
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrMissingMerchantID       = errors.New("merchantId is required")
	ErrMerchantNotFound        = errors.New("merchant not found")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidStatus           = errors.New("invalid payment status")
	ErrAccountCreationFailed   = errors.New("could not create collection account")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed")
	ErrPaymentStatusChanged    = errors.New("payment status changed concurrently")
	ErrInvalidMerchant         = errors.New("invalid merchant")
)
