package routes

import (
	"linkpago/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
	PathClients  = "/clients"

	collectionReceived = "/collection_received"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.CollectionWebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		// Kept for dashboards built against the first release.
		payments.GET("/all", paymentHandler.ListPayments)
		payments.GET("/:orderId", paymentHandler.GetPayment)
		payments.PATCH("/:orderId/status", paymentHandler.UpdatePaymentStatus)
		payments.POST("/:orderId/cancel", paymentHandler.CancelPayment)

		payments.POST(PathWebhooks+collectionReceived, webhookHandler.CollectionReceived)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.CollectionWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST(collectionReceived, webhookHandler.CollectionReceived)
	}
}

func addClientRoutes(rg *gin.RouterGroup, merchantHandler *handlers.MerchantHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", merchantHandler.CreateMerchant)
		clients.GET("", merchantHandler.ListMerchants)
		clients.GET("/:id", merchantHandler.GetMerchant)
		clients.PUT("/:id", merchantHandler.UpdateMerchant)
	}
}
