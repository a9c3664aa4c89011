// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mirathi/internal/delivery/http/middleware"
	"mirathi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FamilyHandler    *handler.FamilyHandler
	DashboardHandler *handler.DashboardHandler
	EvidenceHandler  *handler.EvidenceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	familyHandler    *handler.FamilyHandler
	dashboardHandler *handler.DashboardHandler
	evidenceHandler  *handler.EvidenceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		familyHandler:    params.FamilyHandler,
		dashboardHandler: params.DashboardHandler,
		evidenceHandler:  params.EvidenceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Family record routes require an authenticated registry user.
	families := e.Group("/families")
	families.Use(r.authMiddleware.Authenticate)
	{
		families.POST("", r.familyHandler.CreateFamily)
		families.GET("", r.familyHandler.ListFamilies)
		families.GET("/:id", r.familyHandler.GetFamily)
		families.POST("/:id/archive", r.familyHandler.ArchiveFamily)

		families.POST("/:id/members", r.familyHandler.AddMember)
		families.POST("/:id/members/:memberId/deceased", r.familyHandler.MarkMemberDeceased)

		families.POST("/:id/marriages", r.familyHandler.RegisterMarriage)
		families.POST("/:id/marriages/:marriageId/end", r.familyHandler.EndMarriage)

		families.POST("/:id/houses", r.familyHandler.EstablishHouse)
		families.POST("/:id/houses/:houseId/dissolve", r.familyHandler.DissolveHouse)
		families.POST("/:id/relationships", r.familyHandler.DefineRelationship)
		families.POST("/:id/cohabitations", r.familyHandler.RecordCohabitation)
		families.POST("/:id/adoptions", r.familyHandler.RecordAdoption)

		families.GET("/:id/dashboard", r.dashboardHandler.GetDashboard)
		families.GET("/:id/classification", r.dashboardHandler.GetClassification)
		families.GET("/:id/health", r.dashboardHandler.GetHealth)
		families.GET("/:id/readiness", r.dashboardHandler.GetReadiness)
		families.GET("/:id/extract-qr", r.dashboardHandler.GetExtractQR)

		families.POST("/:id/evidence", r.evidenceHandler.Upload)
	}

	// Evidence download is keyed, not family-scoped.
	evidence := e.Group("/evidence")
	evidence.Use(r.authMiddleware.Authenticate)
	{
		evidence.GET("", r.evidenceHandler.Download)
	}
}
