package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/accident-dashboard-go/internal/models"
	"github.com/jengzang/accident-dashboard-go/internal/render"
	"github.com/jengzang/accident-dashboard-go/internal/service"
	"github.com/jengzang/accident-dashboard-go/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler handles HTTP requests for the accident dashboard
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetRegions handles GET /api/v1/regions
func (h *DashboardHandler) GetRegions(c *gin.Context) {
	regions := h.service.Regions()
	response.Success(c, gin.H{
		"regions": regions,
		"count":   len(regions),
	})
}

// GetMetrics handles GET /api/v1/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	response.Success(c, h.service.Metrics())
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, ok := h.compute(c)
	if !ok {
		return
	}
	response.Success(c, d)
}

// GetChart handles GET /api/v1/dashboard/chart.png
func (h *DashboardHandler) GetChart(c *gin.Context) {
	d, ok := h.compute(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteBarChart(&buf, d.Chart, d.Subtitle, "png"); err != nil {
		response.InternalError(c, "Failed to render chart", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetExport handles GET /api/v1/dashboard/export.xlsx
func (h *DashboardHandler) GetExport(c *gin.Context) {
	d, ok := h.compute(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteWorkbook(&buf, d); err != nil {
		response.InternalError(c, "Failed to export dashboard", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dashboard.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *DashboardHandler) compute(c *gin.Context) (models.Dashboard, bool) {
	var filter models.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return models.Dashboard{}, false
	}
	if filter.Top < 0 {
		response.BadRequest(c, "Invalid top parameter", nil)
		return models.Dashboard{}, false
	}

	d, err := h.service.Dashboard(filter)
	if errors.Is(err, models.ErrUnknownMetric) {
		response.BadRequest(c, "Invalid metric parameter", err)
		return models.Dashboard{}, false
	}
	if err != nil {
		response.InternalError(c, "Failed to compute dashboard", err)
		return models.Dashboard{}, false
	}
	return d, true
}
