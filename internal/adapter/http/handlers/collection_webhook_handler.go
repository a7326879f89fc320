package handlers

import (
	"context"
	"encoding/json"
	request "linkpago/internal/adapter/http/dto/request"
	response "linkpago/internal/adapter/http/dto/response"
	"linkpago/internal/usecase"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	webhookAckStatus      = "received"
	defaultWebhookTimeout = 30 * time.Second
)

// CollectionWebhookHandler acknowledges provider notifications immediately and
// reconciles them in the background. The provider always gets 200.
type CollectionWebhookHandler struct {
	usecase  usecase.ICollectionUseCase
	timeout  time.Duration
	dispatch func(func())
	inflight sync.WaitGroup
}

func NewCollectionWebhookHandler(uc usecase.ICollectionUseCase, timeout time.Duration) *CollectionWebhookHandler {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return &CollectionWebhookHandler{
		usecase:  uc,
		timeout:  timeout,
		dispatch: func(fn func()) { go fn() },
	}
}

// CollectionReceived handles Cucuru "collection_received" webhooks.
//
// @Summary      Collection received webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CollectionReceivedRequest  true  "Collection"
// @Success      200      {object}  response.WebhookAckResponse
// @Router       /payments/webhooks/collection_received [post]
func (h *CollectionWebhookHandler) CollectionReceived(c *gin.Context) {
	raw, readErr := c.GetRawData()
	c.JSON(http.StatusOK, response.WebhookAckResponse{Status: webhookAckStatus})

	if readErr != nil {
		zap.S().Warnf("[collection][handler] unreadable body err=%v", readErr)
		return
	}
	var payload request.CollectionReceivedRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		zap.S().Warnf("[collection][handler] invalid payload err=%v", err)
		return
	}
	collection := payload.ToEntity()
	zap.S().Infof("[collection][handler] received collection_id=%s account=%s customer_id=%s amount=%s",
		collection.CollectionID, collection.CollectionAccount, collection.CustomerID, collection.Amount)

	ctx := context.WithoutCancel(c.Request.Context())
	h.inflight.Add(1)
	h.dispatch(func() {
		defer h.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()

		outcome, err := h.usecase.HandleCollection(ctx, collection)
		if err != nil {
			zap.S().Errorf("[collection][handler] processing failed collection_id=%s outcome=%s err=%v", collection.CollectionID, outcome, err)
			return
		}
		zap.S().Infof("[collection][handler] processed collection_id=%s outcome=%s", collection.CollectionID, outcome)
	})
}

// Wait blocks until background processing started so far has finished or ctx is done.
func (h *CollectionWebhookHandler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
