package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Utkarsh7545/Airmeet-Snap-In/docs"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dispatch"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

type Handler struct {
	dispatcher dispatch.EventDispatcher
	router     *gin.Engine
	log        *zap.Logger
}

func NewHandler(dispatcher dispatch.EventDispatcher, log *zap.Logger) *Handler {
	h := &Handler{
		dispatcher: dispatcher,
		router:     gin.Default(),
		log:        log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/webhooks/airmeet", h.handleWebhookBatch)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// handleWebhookBatch handles POST /webhooks/airmeet
// @Summary Process a batch of Airmeet webhook envelopes
// @Description Dispatches each envelope in order to the reconciliation flows or the configuration validator. A failed validation envelope yields a non-2xx response so activation is blocked.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param batch body dto.WebhookBatchRequest true "Webhook envelope batch"
// @Success 200 {object} dto.WebhookBatchResponse
// @Failure 400 {object} dto.WebhookBatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /webhooks/airmeet [post]
func (h *Handler) handleWebhookBatch(c *gin.Context) {
	var req dto.WebhookBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid webhook batch request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	results := h.dispatcher.Dispatch(c.Request.Context(), req.Events)

	failed := 0
	validationFailed := false
	for _, r := range results {
		if !r.Success {
			failed++
			if r.EventType == dto.EventTypeValidate {
				validationFailed = true
			}
		}
	}

	h.log.Info("Webhook batch processed",
		zap.Int("processed", len(results)),
		zap.Int("failed", failed))

	status := http.StatusOK
	if validationFailed {
		// The activation hook treats any non-2xx as a blocked activation
		status = http.StatusBadRequest
	}

	c.JSON(status, dto.WebhookBatchResponse{
		Processed: len(results),
		Failed:    failed,
		Results:   results,
	})
}
