package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-report-service/internal/inventory"
	"github.com/fekuna/omnipos-report-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/fekuna/omnipos-report-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Register(r gin.IRouter) {
	r.GET("/out-of-stock/", h.ListOutOfStock)
	r.POST("/out-of-stock/", h.ListOutOfStock)
}

func (h *InventoryHandler) ListOutOfStock(c *gin.Context) {
	var req dto.OutOfStockRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}

	items, err := h.uc.ListOutOfStock(c.Request.Context(), req.ToFilters())
	if err != nil {
		h.logger.Error("failed to list out of stock products",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "Failed to list out of stock products", err)
		return
	}

	rows := make([]dto.OutOfStockRow, len(items))
	for i, item := range items {
		rows[i] = mapOutOfStockToRow(item)
	}
	c.JSON(http.StatusOK, rows)
}

func mapOutOfStockToRow(p model.OutOfStockProduct) dto.OutOfStockRow {
	return dto.OutOfStockRow{
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		CategoryName: p.CategoryName,
		VariantCount: p.VariantCount,
	}
}
