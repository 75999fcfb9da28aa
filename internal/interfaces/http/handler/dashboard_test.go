package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appreporting "github.com/marketplace/backend/internal/application/reporting"
	"github.com/marketplace/backend/internal/domain/reporting"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
)

type stubDashboardService struct {
	summary   *appreporting.DashboardSummary
	chart     *appreporting.RevenueChart
	err       error
	gotScope  reporting.Scope
	gotPeriod string
}

func (s *stubDashboardService) GetSummary(_ context.Context, scope reporting.Scope, period string) (*appreporting.DashboardSummary, error) {
	s.gotScope = scope
	s.gotPeriod = period
	return s.summary, s.err
}

func (s *stubDashboardService) GetRevenueChart(_ context.Context, scope reporting.Scope, period string) (*appreporting.RevenueChart, error) {
	s.gotScope = scope
	s.gotPeriod = period
	return s.chart, s.err
}

// identityStub plants a user ID the way the JWT middleware would
func identityStub(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID)
		c.Next()
	}
}

func newDashboardRouter(service DashboardService, identity ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(service, zap.NewNop())
	router := gin.New()
	group := router.Group("/", identity...)
	group.GET("/agent/dashboard/summary", h.AgentSummary)
	group.GET("/agent/dashboard/revenue-chart", h.AgentRevenueChart)
	group.GET("/admin/dashboard/summary", h.AdminSummary)
	group.GET("/admin/dashboard/revenue-chart", h.AdminRevenueChart)
	return router
}

func TestDashboardHandler_AgentSummary(t *testing.T) {
	agentID := uuid.New()
	service := &stubDashboardService{summary: &appreporting.DashboardSummary{
		Period:       "week",
		TotalOrders:  3,
		TotalRevenue: 450.50,
	}}
	router := newDashboardRouter(service, identityStub(agentID.String()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent/dashboard/summary?period=week", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "week", service.gotPeriod)
	assert.False(t, service.gotScope.Platform())
	assert.Equal(t, agentID, service.gotScope.AgentID())

	var body struct {
		Success bool                          `json:"success"`
		Data    appreporting.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(3), body.Data.TotalOrders)
	assert.InDelta(t, 450.50, body.Data.TotalRevenue, 0.001)
}

func TestDashboardHandler_AgentSummary_MissingIdentity(t *testing.T) {
	service := &stubDashboardService{summary: &appreporting.DashboardSummary{}}
	router := newDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent/dashboard/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
}

func TestDashboardHandler_AgentSummary_BadIdentity(t *testing.T) {
	service := &stubDashboardService{summary: &appreporting.DashboardSummary{}}
	router := newDashboardRouter(service, identityStub("not-a-uuid"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agent/dashboard/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardHandler_AdminSummary_PlatformScope(t *testing.T) {
	service := &stubDashboardService{summary: &appreporting.DashboardSummary{Period: "all"}}
	router := newDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, service.gotScope.Platform())
	assert.Empty(t, service.gotPeriod)
}

func TestDashboardHandler_AdminRevenueChart(t *testing.T) {
	service := &stubDashboardService{chart: &appreporting.RevenueChart{
		Period:  "month",
		Labels:  []string{"1", "2"},
		Revenue: []float64{10, 20},
	}}
	router := newDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/revenue-chart?period=month", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "month", service.gotPeriod)

	var body struct {
		Data appreporting.RevenueChart `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"1", "2"}, body.Data.Labels)
}

func TestDashboardHandler_ServiceError(t *testing.T) {
	service := &stubDashboardService{err: assert.AnError}
	router := newDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
}
