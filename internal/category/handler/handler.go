package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-report-service/internal/category"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/fekuna/omnipos-report-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(r gin.IRouter) {
	r.GET("/filters/", h.GetFilters)
}

func (h *CategoryHandler) GetFilters(c *gin.Context) {
	filters, err := h.uc.GetFilters(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list category filters",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "Failed to load filters", err)
		return
	}
	c.JSON(http.StatusOK, filters)
}
