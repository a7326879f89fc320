package routes

import (
	"context"
	"errors"
	"fmt"
	"linkpago/internal/adapter/http/dto/request"
	"linkpago/internal/adapter/http/handlers"
	repository2 "linkpago/internal/adapter/persistence/repository"
	"linkpago/internal/config"
	"linkpago/internal/infrastructure/cucuru"
	"linkpago/internal/infrastructure/database"
	"linkpago/internal/infrastructure/scheduler"
	"linkpago/internal/usecase"
	"linkpago/internal/usecase/interfaces"
	"net/http"
	"time"

	_ "linkpago/docs" // swagger spec

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Payments  *handlers.PaymentHandler
	Webhooks  *handlers.CollectionWebhookHandler
	Merchants *handlers.MerchantHandler
}

// Run wires the service, starts the reversal scheduler and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.Server.GinMode)
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	h, reversals, paymentUseCase, err := getHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := reversals.Run(ctx, paymentUseCase.RevertRejected); err != nil {
			zap.S().Errorf("[routes] reversal scheduler stopped err=%v", err)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.S().Infof("[routes] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
	case <-ctx.Done():
	}

	zap.S().Infof("[routes] shutting down timeout=%s", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := h.Webhooks.Wait(shutdownCtx); err != nil {
		zap.S().Warnf("[routes] webhook processing still running at shutdown err=%v", err)
	}
	<-schedulerDone
	return nil
}

// NewRouter mounts middlewares, swagger and every route group.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addWebhookRoutes(router.Group(""), h.Webhooks)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments, h.Webhooks)
	addClientRoutes(v1, h.Merchants)
	return router
}

func getHandlers(ctx context.Context, cfg config.Config) (Handlers, interfaces.IReversalScheduler, *usecase.PaymentUseCase, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, nil, nil, err
	}
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	merchantRepo := repository2.NewMerchantDynamoRepository(ddb, cfg.Tables.Clients)

	provider := cucuru.NewClient(cfg.Cucuru.BaseURL, cfg.Cucuru.Timeout, cfg.Cucuru.Mock)

	var reversals interfaces.IReversalScheduler
	if cfg.Redis.Addr != "" {
		client, err := scheduler.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return Handlers{}, nil, nil, err
		}
		reversals = scheduler.NewRedisScheduler(client, cfg.Redis.Key, cfg.Reversal.PollInterval)
	} else {
		reversals = scheduler.NewMemoryScheduler(cfg.Reversal.PollInterval)
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, merchantRepo, provider, reversals)
	collectionUseCase := usecase.NewCollectionUseCase(paymentRepo, merchantRepo, provider, reversals, cfg.Reversal.Delay)
	merchantUseCase := usecase.NewMerchantUseCase(merchantRepo)

	return Handlers{
		Payments:  handlers.NewPaymentHandler(paymentUseCase),
		Webhooks:  handlers.NewCollectionWebhookHandler(collectionUseCase, cfg.Server.WebhookTimeout),
		Merchants: handlers.NewMerchantHandler(merchantUseCase),
	}, reversals, paymentUseCase, nil
}
