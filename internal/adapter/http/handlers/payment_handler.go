package handlers

import (
	"errors"
	request "linkpago/internal/adapter/http/dto/request"
	response "linkpago/internal/adapter/http/dto/response"
	"linkpago/internal/usecase"
	"linkpago/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidStatusPayload  = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payment links.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment provisions a CVU and stores a pending payment link.
//
// @Summary      Create payment link
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePaymentRequest  true  "Payment link"
// @Success      201      {object}  response.CreatePaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		zap.S().Infof("[payment][handler] invalid create payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		zap.S().Infof("[payment][handler] create failed merchant_id=%s err=%v", payload.MerchantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedPayment(created))
}

// ListPayments returns a merchant's payments, newest first.
//
// @Summary      List payments by merchant
// @Tags         payments
// @Produce      json
// @Param        merchantId  query     string  true  "Merchant id"
// @Success      200         {array}   response.PaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	merchantID := c.Query("merchantId")

	payments, err := h.usecase.ListByMerchantID(c.Request.Context(), merchantID)
	if err != nil {
		zap.S().Infof("[payment][handler] list failed merchant_id=%s err=%v", merchantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment returns a single payment by order id.
//
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  response.PaymentResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/{orderId} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	orderID := c.Param("orderId")

	p, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UpdatePaymentStatus is the operator override of a payment status.
//
// @Summary      Override payment status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        orderId  path      string                       true  "Order id"
// @Param        payload  body      request.UpdateStatusRequest  true  "New status"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/{orderId}/status [patch]
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, payload.ToOverride())
	if err != nil {
		zap.S().Infof("[payment][handler] status override failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// CancelPayment closes the account and cancels the link.
//
// @Summary      Cancel payment link
// @Tags         payments
// @Produce      json
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  response.CancelPaymentResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /payments/{orderId}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	orderID := c.Param("orderId")

	cancelled, err := h.usecase.Cancel(c.Request.Context(), orderID)
	if err != nil {
		zap.S().Infof("[payment][handler] cancel failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancelledPayment(cancelled))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingMerchantID):
		return pkg.NewDomainErrorSimple("MERCHANT_ID_REQUIRED", "merchantId is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid payment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMerchantNotFound):
		return pkg.NewDomainErrorSimple("MERCHANT_NOT_FOUND", "Merchant not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_COMPLETED", "A completed payment cannot be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentStatusChanged):
		return pkg.NewDomainErrorSimple("PAYMENT_STATUS_CHANGED", "Payment status changed, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountCreationFailed):
		return pkg.NewDomainError("ACCOUNT_CREATION_FAILED", "Could not create the collection account", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
