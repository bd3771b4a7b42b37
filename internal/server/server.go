package server

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servicetrack/internal/database"
)

type Server struct {
	router *gin.Engine
	db     *database.DB
	log    *zap.SugaredLogger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, log *zap.SugaredLogger) *Server {
	router := gin.Default()

	// The mobile client calls from an app webview/network context with no
	// fixed origin.
	router.Use(cors.Default())

	server := &Server{
		router: router,
		db:     db,
		log:    log,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.POST("/login", s.login)
		api.POST("/change-password", s.changePassword)

		api.GET("/dashboard-stats", s.dashboardStats)
		api.GET("/monthly-stats", s.monthlyStats)

		api.GET("/customers", s.listCustomers)
		api.POST("/customers", s.addCustomer)
		api.PUT("/customers", s.updateCustomer)
		api.DELETE("/customers/:id", s.deleteCustomer)

		api.GET("/service-calls", s.listServiceCalls)
		api.GET("/service-calls/pending", s.pendingServiceCalls)
		api.GET("/service-calls/:id", s.getServiceCall)
		api.POST("/service-calls", s.addServiceCall)
		api.PUT("/service-calls", s.updateServiceCall)
		api.PUT("/service-calls/status", s.updateServiceCallStatus)
		api.DELETE("/service-calls/:id", s.deleteServiceCall)

		api.GET("/repairs", s.listRepairs)
		api.POST("/repairs", s.addRepair)
		api.PUT("/repairs", s.updateRepair)
		api.DELETE("/repairs/:id", s.deleteRepair)

		api.GET("/amc", s.listAmcRecords)
		api.POST("/amc", s.addAmcRecord)
		api.PUT("/amc", s.updateAmcRecord)
		api.DELETE("/amc/:id", s.deleteAmcRecord)

		api.GET("/areas", s.listAreas)
		api.POST("/areas", s.addArea)
		api.DELETE("/areas/:id", s.deleteArea)

		api.GET("/products", s.listProducts)
		api.POST("/products", s.addProduct)
		api.DELETE("/products/:id", s.deleteProduct)

		api.GET("/common-issues", s.listCommonIssues)
		api.POST("/common-issues", s.addCommonIssue)
		api.DELETE("/common-issues/:id", s.deleteCommonIssue)

		api.GET("/common-resolutions", s.listCommonResolutions)
		api.POST("/common-resolutions", s.addCommonResolution)
		api.DELETE("/common-resolutions/:id", s.deleteCommonResolution)

		api.GET("/settings", s.getSettings)
		api.POST("/settings", s.saveSettings)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "servicetrack",
	})
}

// fail maps a data-access error to the flat 500 body every handler shares.
func (s *Server) fail(c *gin.Context, err error) {
	s.log.Errorw("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathID parses the :id path parameter. A malformed id answers 400 and
// returns false.
func (s *Server) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// changes is the body shape of every update and delete response. The
// client treats 0 as "nothing matched", not as an error.
func changes(c *gin.Context, n int64) {
	c.JSON(http.StatusOK, gin.H{"changes": n})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
