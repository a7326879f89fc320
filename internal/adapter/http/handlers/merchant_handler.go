package handlers

import (
	"errors"
	request "linkpago/internal/adapter/http/dto/request"
	response "linkpago/internal/adapter/http/dto/response"
	"linkpago/internal/usecase"
	"linkpago/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidMerchantPayload = pkg.NewDomainErrorSimple("INVALID_MERCHANT_INPUT", "Invalid merchant payload", http.StatusBadRequest)

// MerchantHandler exposes the merchant (client) admin endpoints.

type MerchantHandler struct {
	usecase usecase.IMerchantUseCase
}

func NewMerchantHandler(uc usecase.IMerchantUseCase) *MerchantHandler {
	return &MerchantHandler{usecase: uc}
}

// CreateMerchant registers a merchant and its provider credentials.
//
// @Summary      Create merchant
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload  body      request.MerchantCreateRequest  true  "Merchant"
// @Success      201      {object}  response.MerchantResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var payload request.MerchantCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMerchantPayload.HTTPStatus, errInvalidMerchantPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMerchant(created))
}

// ListMerchants returns every merchant with masked credentials.
//
// @Summary      List merchants
// @Tags         clients
// @Produce      json
// @Success      200  {array}  response.MerchantResponse
// @Router       /clients [get]
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMerchants(merchants))
}

// GetMerchant returns one merchant.
//
// @Summary      Get merchant
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Merchant id"
// @Success      200  {object}  response.MerchantResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

// UpdateMerchant applies a partial update.
//
// @Summary      Update merchant
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Merchant id"
// @Param        payload  body      request.MerchantUpdateRequest  true  "Fields to change"
// @Success      200      {object}  response.MerchantResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /clients/{id} [put]
func (h *MerchantHandler) UpdateMerchant(c *gin.Context) {
	var payload request.MerchantUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMerchantPayload.HTTPStatus, errInvalidMerchantPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(updated))
}

func mapMerchantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingMerchantID):
		return pkg.NewDomainErrorSimple("MERCHANT_ID_REQUIRED", "Merchant id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMerchant):
		return pkg.NewDomainErrorSimple("INVALID_MERCHANT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMerchantNotFound):
		return pkg.NewDomainErrorSimple("MERCHANT_NOT_FOUND", "Merchant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
