package http

import (
	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/rbac"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Health      *Handler
	Auth        *AuthHandler
	Inspections *InspectionHandler
	Payouts     *PayoutHandler
	Submissions *SubmissionHandler
	Users       *UserHandler
	Branding    *BrandingHandler
}

// Gate builds the per-route access middleware.
type Gate func(res rbac.Resource, act rbac.Action) echo.MiddlewareFunc

// RegisterRoutes wires the full HTTP surface. The gate decides per route
// whether the caller may proceed and which ownership scope applies; the
// handlers then build their queries from that scope.
func RegisterRoutes(e *echo.Echo, h Handlers, gate Gate, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	e.POST("/auth/signup", h.Auth.SignUp)
	e.POST("/auth/signin", h.Auth.SignIn)
	e.POST("/auth/signout", h.Auth.SignOut)
	e.GET("/auth/me", h.Auth.Me)

	// anonymous surfaces
	e.POST("/submissions", h.Submissions.Create, gate(rbac.ResourceSubmissions, rbac.ActionCreate))
	e.GET("/settings/header", h.Branding.Get, gate(rbac.ResourceBranding, rbac.ActionRead))

	insp := e.Group("/inspections")
	insp.GET("", h.Inspections.List, gate(rbac.ResourceInspections, rbac.ActionList))
	insp.POST("", h.Inspections.Create, gate(rbac.ResourceInspections, rbac.ActionCreate), idem)
	insp.PUT("/:report_id", h.Inspections.Update, gate(rbac.ResourceInspections, rbac.ActionUpdate), idem)
	insp.DELETE("/:report_id", h.Inspections.Delete, gate(rbac.ResourceInspections, rbac.ActionDelete))
	insp.GET("/export.xlsx", h.Inspections.Export, gate(rbac.ResourceInspections, rbac.ActionExport))

	pay := e.Group("/payouts")
	pay.GET("", h.Payouts.List, gate(rbac.ResourcePayouts, rbac.ActionList))
	pay.POST("", h.Payouts.Create, gate(rbac.ResourcePayouts, rbac.ActionCreate), idem)
	pay.PUT("/:report_id", h.Payouts.Update, gate(rbac.ResourcePayouts, rbac.ActionUpdate), idem)
	pay.DELETE("/:report_id", h.Payouts.Delete, gate(rbac.ResourcePayouts, rbac.ActionDelete))
	pay.GET("/export.xlsx", h.Payouts.Export, gate(rbac.ResourcePayouts, rbac.ActionExport))

	admin := e.Group("/admin")
	admin.GET("/submissions", h.Submissions.List, gate(rbac.ResourceSubmissions, rbac.ActionList))
	admin.POST("/submissions/:submission_id/approve", h.Submissions.Approve, gate(rbac.ResourceSubmissions, rbac.ActionReview))
	admin.POST("/submissions/:submission_id/reject", h.Submissions.Reject, gate(rbac.ResourceSubmissions, rbac.ActionReview))
	admin.GET("/users", h.Users.List, gate(rbac.ResourceUsers, rbac.ActionList))
	admin.POST("/users", h.Users.Create, gate(rbac.ResourceUsers, rbac.ActionCreate), idem)
	admin.DELETE("/users/:user_id", h.Users.Delete, gate(rbac.ResourceUsers, rbac.ActionDelete))
	admin.PUT("/settings/header", h.Branding.Update, gate(rbac.ResourceBranding, rbac.ActionUpdate), idem)
}
