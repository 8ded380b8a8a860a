package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/report"
	"github.com/fekuna/omnipos-report-service/internal/report/dto"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/fekuna/omnipos-report-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const welcomeMessage = "Welcome to the e-commerce reports API"

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

// Register mounts the report endpoints. Every report answers both POST with a JSON
// body and GET with query parameters.
func (h *ReportHandler) Register(r gin.IRouter) {
	r.GET("/", h.Welcome)

	routes := map[string]gin.HandlerFunc{
		"/kpis/":                   h.GetKPISummary,
		"/top-products/":           h.GetTopProducts,
		"/least-sold-products/":    h.GetLeastSoldProducts,
		"/most-returned-products/": h.GetMostReturnedProducts,
		"/category-comparison/":    h.GetCategoryComparison,
	}
	for path, fn := range routes {
		r.GET(path, fn)
		r.POST(path, fn)
	}
}

func (h *ReportHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

func (h *ReportHandler) GetKPISummary(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	kpi, err := h.uc.GetKPISummary(c.Request.Context(), filters)
	if err != nil {
		h.internalError(c, "Failed to compute KPI summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.KPIResponse{
		UnitsSold:       kpi.UnitsSold,
		RevenuePerSKU:   kpi.RevenuePerSKU.InexactFloat64(),
		ReturnPercent:   kpi.ReturnPercent.InexactFloat64(),
		OutOfStockCount: kpi.OutOfStockCount,
	})
}

func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.uc.GetTopProducts(c.Request.Context(), filters)
	if err != nil {
		h.internalError(c, "Failed to load top products", err)
		return
	}
	c.JSON(http.StatusOK, mapProductRows(rows))
}

func (h *ReportHandler) GetLeastSoldProducts(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.uc.GetLeastSoldProducts(c.Request.Context(), filters)
	if err != nil {
		h.internalError(c, "Failed to load least sold products", err)
		return
	}
	c.JSON(http.StatusOK, mapProductRows(rows))
}

func (h *ReportHandler) GetMostReturnedProducts(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.uc.GetMostReturnedProducts(c.Request.Context(), filters)
	if err != nil {
		h.internalError(c, "Failed to load most returned products", err)
		return
	}
	c.JSON(http.StatusOK, mapProductRows(rows))
}

func (h *ReportHandler) GetCategoryComparison(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.uc.GetCategoryComparison(c.Request.Context(), filters)
	if err != nil {
		h.internalError(c, "Failed to load category comparison", err)
		return
	}

	out := make([]dto.CategoryRow, len(rows))
	for i, r := range rows {
		out[i] = dto.CategoryRow{
			CategoryName:   r.CategoryName,
			TotalUnitsSold: r.TotalUnitsSold,
			TotalRevenue:   r.TotalRevenue.InexactFloat64(),
			TotalReturns:   r.TotalReturns,
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) bindFilters(c *gin.Context) (*dto.ReportFilters, bool) {
	var req dto.ReportRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request parameters", err)
		return nil, false
	}

	filters, err := req.ToFilters()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filters", err)
		return nil, false
	}
	return filters, true
}

func (h *ReportHandler) internalError(c *gin.Context, message string, err error) {
	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	response.Error(c, http.StatusInternalServerError, message, err)
}

func mapProductRows(rows []model.ProductSales) []dto.ProductRow {
	out := make([]dto.ProductRow, len(rows))
	for i, r := range rows {
		out[i] = dto.ProductRow{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			UnitsSold:    r.UnitsSold,
			Revenue:      r.Revenue.InexactFloat64(),
			ReturnCount:  r.ReturnCount,
			CurrentStock: r.CurrentStock,
		}
	}
	return out
}
