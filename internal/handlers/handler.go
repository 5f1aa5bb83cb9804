package handlers

import (
	"time"

	_ "sigma/docs"
	"sigma/internal/logger"
	"sigma/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	now            func() time.Time
	streamInterval time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithStreamInterval sets the default push period of /ws/stats.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.streamInterval = d
		}
	}
}

// WithClock pins the clock used for defaults such as the current semester.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		services:       services,
		log:            log,
		now:            time.Now,
		streamInterval: defaultInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	h.registerAuthRoutes(api)

	protected := api.Group("", h.userIdentity)
	{
		h.registerUserRoutes(protected)
		h.registerAgentRoutes(protected)
		h.registerElementRoutes(protected)
		h.registerMaintenanceRoutes(protected)
		h.registerListRoutes(protected)
		h.registerStatsRoutes(protected)
	}

	router.GET("/ws/stats", h.streamIdentity, h.wsStats)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.adminOnly)
	{
		users.GET("", h.listUsers)
		users.GET("/pending", h.pendingUsers)
		// Body: {"approve":true}; false rejects and removes the registration
		users.POST("/:id/approve", h.approveUser)
		users.PATCH("/:id/role", h.updateUserRole)
		users.DELETE("/:id", h.deleteUser)
	}
}

func (h *Handler) registerAgentRoutes(api *gin.RouterGroup) {
	agents := api.Group("/agents")
	{
		agents.GET("", h.listAgents)
		agents.POST("", h.createAgent)
		agents.PATCH("/:id/sector", h.assignSector)
	}
}

func (h *Handler) registerElementRoutes(api *gin.RouterGroup) {
	stations := api.Group("/stations/:station")
	{
		stations.GET("/elements", h.stationElements)
		stations.GET("/counts", h.stationCounts)
	}

	elements := api.Group("/elements")
	{
		elements.POST("", h.createElement)
		elements.GET("/:id", h.getElement)
		elements.PUT("/:id", h.updateElement)
		elements.DELETE("/:id", h.deleteElement)
		elements.GET("/:id/maintenance", h.maintenanceHistory)
		elements.GET("/:id/faults", h.faultHistory)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	maintenance := api.Group("/maintenance")
	{
		maintenance.POST("", h.addMaintenance)
		maintenance.GET("/daily", h.dailyMaintenance)
		maintenance.GET("/monthly", h.monthlyMaintenance)
	}
	api.POST("/faults", h.addFault)
}

func (h *Handler) registerListRoutes(api *gin.RouterGroup) {
	lists := api.Group("/lists")
	{
		lists.PUT("", h.saveList)
		lists.GET("/:year/:month", h.getList)
		lists.POST("/draft", h.draftList)
	}
}

func (h *Handler) registerStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats")
	{
		stats.GET("/semester", h.semesterStats)
		stats.GET("/semester/export", h.exportSemesterStats)
	}
	api.POST("/cycle/check", h.adminOnly, h.checkCycle)
}
