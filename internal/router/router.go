package router

import (
	"github.com/gin-gonic/gin"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/handler"
	"renova/internal/middleware"
	"renova/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	portfolioH *handler.PortfolioHandler,
	prestationH *handler.PrestationHandler,
	proxyH *handler.ProxyHandler,
	contactH *handler.ContactHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/status", authH.Status)

	// Public content reads
	api.GET("/portfolio", portfolioH.List)
	api.GET("/portfolio/:id", portfolioH.GetByID)
	api.GET("/prestation", prestationH.List)
	api.GET("/prestation/:id", prestationH.GetByID)

	// Image access proxy, addressed by the rewritten URLs the reads return
	api.GET("/proxy-image", proxyH.Serve)

	// Contact form
	api.POST("/contact", contactH.Submit)

	// Protected routes - require a valid session
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc, cfg.Session.CookieName))

	protected.GET("/auth/me", authH.Me)

	protected.POST("/portfolio", portfolioH.Create)
	protected.PUT("/portfolio/:id", portfolioH.Update)
	protected.DELETE("/portfolio/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor), portfolioH.Delete)
	protected.DELETE("/portfolio/:id/other-image", portfolioH.RemoveGalleryImage)

	protected.POST("/prestation", prestationH.Create)
	protected.PUT("/prestation/:id", prestationH.Update)
	protected.DELETE("/prestation/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor), prestationH.Delete)
	protected.DELETE("/prestation/:id/other-image", prestationH.RemoveGalleryImage)

	protected.GET("/export/content", middleware.RequireRole(domain.RoleAdmin), exportH.Content)

	return r
}
