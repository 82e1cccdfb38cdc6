package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpmw "github.com/johnquangdev/meeting-workspace/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	workspaceHandler *Workspace
	healthHandler    *Health
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, workspaceHandler *Workspace, healthHandler *Health) *Router {
	return &Router{
		cfg:              cfg,
		workspaceHandler: workspaceHandler,
		healthHandler:    healthHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthHandler.Check)

	if rt.cfg.Metrics.Enabled {
		e.GET(rt.cfg.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	session := httpmw.EchoSession(&rt.cfg.Session)

	rt.setupPageRoutes(e, session)

	// API v1 group
	v1 := e.Group("/v1")
	v1.GET("/workspace", rt.workspaceHandler.Snapshot, session)
}

// setupPageRoutes configures the workspace page and its form posts
func (rt *Router) setupPageRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	h := rt.workspaceHandler

	e.GET("/", h.Page, session)

	e.POST("/file", h.SelectFile, session)
	e.POST("/process", h.Process, session)

	e.POST("/forms/close", h.CloseForm, session)
	e.POST("/forms/:kind", h.OpenForm, session)

	e.POST("/discussion-points", h.AddDiscussionPoint, session)
	e.POST("/discussion-points/:id/delete", h.DeleteDiscussionPoint, session)
	e.POST("/action-items", h.AddActionItem, session)
	e.POST("/action-items/:id/delete", h.DeleteActionItem, session)

	e.POST("/export", h.Export, session)
	e.POST("/chat", h.Chat, session)
}
