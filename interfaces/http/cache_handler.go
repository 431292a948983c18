package http

import (
	"fmt"
	"net/http"
	"strings"

	"berta-backend/domain/dto"
	"berta-backend/domain/model"
	"berta-backend/infrastructure/logger"
	"berta-backend/usecase"

	"github.com/gin-gonic/gin"
)

// ICacheHandler defines the interface for the cache HTTP handlers
type ICacheHandler interface {
	GetResource(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// CacheHandler serves cached resource documents
type CacheHandler struct {
	cacheUseCase usecase.ICacheUseCase
}

// NewCacheHandler creates a new cache handler instance
func NewCacheHandler(cacheUseCase usecase.ICacheUseCase) ICacheHandler {
	return &CacheHandler{cacheUseCase: cacheUseCase}
}

// GetResource handles GET /?resource=...&raw=...&no-cache=...
func (h *CacheHandler) GetResource(ctx *gin.Context) {
	resource, ok := model.ParseResourceType(ctx.Query("resource"))
	if !ok {
		allowed := make([]string, 0, len(model.AllResourceTypes))
		for _, rt := range model.AllResourceTypes {
			allowed = append(allowed, string(rt))
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("pass the requested resource type with a query param (resource=%s)", strings.Join(allowed, " | ")),
		})
		return
	}

	forceRefresh := ctx.Query("no-cache") == "true"

	doc, err := h.cacheUseCase.Get(ctx.Request.Context(), resource, forceRefresh)
	if err != nil {
		logger.GetLogger().WithField("resource", resource).WithField("error", err).Error("Failed to load resource")
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "failed to load resource",
			"message": err.Error(),
		})
		return
	}

	if ctx.Query("raw") == "true" {
		ctx.JSON(http.StatusOK, doc)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewClientDocument(doc))
}

// Health handles GET /healthz
func (h *CacheHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
