package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreporting "github.com/marketplace/backend/internal/application/reporting"
	"github.com/marketplace/backend/internal/domain/reporting"
	"github.com/marketplace/backend/internal/interfaces/http/dto"
)

// DashboardService is the application-layer contract the dashboard
// handler depends on
type DashboardService interface {
	GetSummary(ctx context.Context, scope reporting.Scope, periodToken string) (*appreporting.DashboardSummary, error)
	GetRevenueChart(ctx context.Context, scope reporting.Scope, periodToken string) (*appreporting.RevenueChart, error)
}

// DashboardHandler serves the agent and admin dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(service DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// AgentSummary handles GET /agent/dashboard/summary
func (h *DashboardHandler) AgentSummary(c *gin.Context) {
	agentID, ok := h.currentAgent(c)
	if !ok {
		return
	}
	h.summary(c, reporting.AgentScope(agentID))
}

// AdminSummary handles GET /admin/dashboard/summary
func (h *DashboardHandler) AdminSummary(c *gin.Context) {
	h.summary(c, reporting.PlatformScope())
}

// AgentRevenueChart handles GET /agent/dashboard/revenue-chart
func (h *DashboardHandler) AgentRevenueChart(c *gin.Context) {
	agentID, ok := h.currentAgent(c)
	if !ok {
		return
	}
	h.revenueChart(c, reporting.AgentScope(agentID))
}

// AdminRevenueChart handles GET /admin/dashboard/revenue-chart
func (h *DashboardHandler) AdminRevenueChart(c *gin.Context) {
	h.revenueChart(c, reporting.PlatformScope())
}

func (h *DashboardHandler) summary(c *gin.Context, scope reporting.Scope) {
	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}
	summary, err := h.service.GetSummary(c.Request.Context(), scope, query.Period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

func (h *DashboardHandler) revenueChart(c *gin.Context, scope reporting.Scope) {
	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}
	chart, err := h.service.GetRevenueChart(c.Request.Context(), scope, query.Period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, chart)
}
