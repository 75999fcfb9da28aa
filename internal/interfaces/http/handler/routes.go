package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marketplace/backend/internal/infrastructure/auth"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
)

// Routes wires all handlers onto the versioned API group. Agent routes
// require a valid token; admin routes additionally require the admin
// role.
type Routes struct {
	System    *SystemHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Auth      gin.HandlerFunc
	AdminOnly gin.HandlerFunc
}

// NewRoutes builds the route registrar from the handlers and JWT service
func NewRoutes(
	system *SystemHandler,
	dashboard *DashboardHandler,
	report *ReportHandler,
	jwtService *auth.JWTService,
) *Routes {
	return &Routes{
		System:    system,
		Dashboard: dashboard,
		Report:    report,
		Auth:      middleware.JWTAuthMiddleware(jwtService),
		AdminOnly: middleware.RequireRole(auth.RoleAdmin),
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (r *Routes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", r.System.Health)
	rg.GET("/ready", r.System.Ready)

	agent := rg.Group("/agent", r.Auth)
	{
		agent.GET("/dashboard/summary", r.Dashboard.AgentSummary)
		agent.GET("/dashboard/revenue-chart", r.Dashboard.AgentRevenueChart)
		agent.GET("/reports/sales", r.Report.AgentSalesReport)
	}

	admin := rg.Group("/admin", r.Auth, r.AdminOnly)
	{
		admin.GET("/dashboard/summary", r.Dashboard.AdminSummary)
		admin.GET("/dashboard/revenue-chart", r.Dashboard.AdminRevenueChart)
		admin.GET("/reports/sales", r.Report.AdminSalesReport)
	}
}
