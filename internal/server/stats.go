package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) dashboardStats(c *gin.Context) {
	stats, err := s.db.DashboardStats()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) monthlyStats(c *gin.Context) {
	stats, err := s.db.MonthlyStats()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
