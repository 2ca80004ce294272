package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func registeredRoutes(register func(g gin.IRouter)) map[string]bool {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r.Group("/api/v1"))

	routes := make(map[string]bool, len(r.Routes()))
	for _, rt := range r.Routes() {
		routes[rt.Method+" "+rt.Path] = true
	}
	return routes
}

func TestRegisterMemberRoutes_RegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(func(g gin.IRouter) { RegisterMemberRoutes(g, nil) })

	require.True(t, routes["POST /api/v1/members"])
	require.True(t, routes["GET /api/v1/members"])
	require.True(t, routes["GET /api/v1/members/:id"])
	require.True(t, routes["PUT /api/v1/members/:id"])
	require.True(t, routes["DELETE /api/v1/members/:id"])
	require.True(t, routes["POST /api/v1/members/refresh-statuses"])
}

func TestRegisterAttendanceRoutes_RegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(func(g gin.IRouter) { RegisterAttendanceRoutes(g, nil) })

	require.True(t, routes["POST /api/v1/attendance/check-in"])
	require.True(t, routes["POST /api/v1/attendance/check-out"])
	require.True(t, routes["POST /api/v1/attendance/:id/check-out"])
	require.True(t, routes["GET /api/v1/attendance"])
}

func TestRegisterPaymentRoutes_RegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(func(g gin.IRouter) { RegisterPaymentRoutes(g, nil) })

	require.True(t, routes["POST /api/v1/payments"])
	require.True(t, routes["GET /api/v1/payments"])
	require.True(t, routes["POST /api/v1/payments/scan"])
}

func TestRegisterReportRoutes_RegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(func(g gin.IRouter) { RegisterReportRoutes(g, nil) })

	require.True(t, routes["GET /api/v1/reports/attendance"])
	require.True(t, routes["GET /api/v1/reports/membership"])
	require.True(t, routes["GET /api/v1/reports/revenue"])
	require.True(t, routes["GET /api/v1/reports/growth"])
	require.True(t, routes["GET /api/v1/dashboard"])
}
