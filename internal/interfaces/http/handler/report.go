package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appreporting "github.com/marketplace/backend/internal/application/reporting"
	"github.com/marketplace/backend/internal/domain/reporting"
	"github.com/marketplace/backend/internal/interfaces/http/dto"
)

// defaultReportDays is the window served when no range is given
const defaultReportDays = 30

// ReportService is the application-layer contract the report handler
// depends on
type ReportService interface {
	GetSalesReport(ctx context.Context, scope reporting.Scope, q appreporting.ReportQuery) (*appreporting.SalesReport, error)
}

// ReportHandler serves the composite sales report endpoints
type ReportHandler struct {
	BaseHandler
	service ReportService
	now     func() time.Time
}

// NewReportHandler creates a report handler
func NewReportHandler(service ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		now:         time.Now,
	}
}

// AgentSalesReport handles GET /agent/reports/sales
func (h *ReportHandler) AgentSalesReport(c *gin.Context) {
	agentID, ok := h.currentAgent(c)
	if !ok {
		return
	}
	h.salesReport(c, reporting.AgentScope(agentID))
}

// AdminSalesReport handles GET /admin/reports/sales
func (h *ReportHandler) AdminSalesReport(c *gin.Context) {
	h.salesReport(c, reporting.PlatformScope())
}

func (h *ReportHandler) salesReport(c *gin.Context, scope reporting.Scope) {
	var query dto.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	reportQuery, err := h.buildQuery(query)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.service.GetSalesReport(c.Request.Context(), scope, reportQuery)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, report,
		report.Products.Total, report.Products.Page, report.Products.PageSize)
}

// buildQuery converts bound query params into the application query,
// defaulting the range to the last 30 days
func (h *ReportHandler) buildQuery(query dto.SalesReportQuery) (appreporting.ReportQuery, error) {
	now := h.now().UTC()
	from := now.AddDate(0, 0, -defaultReportDays)
	to := now

	var err error
	if query.From != "" {
		if from, err = time.ParseInLocation("2006-01-02", query.From, time.UTC); err != nil {
			return appreporting.ReportQuery{}, err
		}
	}
	if query.To != "" {
		if to, err = time.ParseInLocation("2006-01-02", query.To, time.UTC); err != nil {
			return appreporting.ReportQuery{}, err
		}
	}

	q := appreporting.ReportQuery{
		From:     from,
		To:       to,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return appreporting.ReportQuery{}, err
		}
		q.CategoryID = &categoryID
	}
	return q, nil
}
