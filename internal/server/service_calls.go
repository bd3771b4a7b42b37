package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicetrack/internal/models"
)

func (s *Server) listServiceCalls(c *gin.Context) {
	calls, err := s.db.ListServiceCalls()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

func (s *Server) pendingServiceCalls(c *gin.Context) {
	calls, err := s.db.PendingCallsToday()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

func (s *Server) getServiceCall(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	call, err := s.db.GetServiceCall(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if call == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service call not found"})
		return
	}
	c.JSON(http.StatusOK, call)
}

func (s *Server) addServiceCall(c *gin.Context) {
	var input models.ServiceCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddServiceCall(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) updateServiceCall(c *gin.Context) {
	var input models.ServiceCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.db.UpdateServiceCall(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) updateServiceCallStatus(c *gin.Context) {
	var req struct {
		ID         int64  `json:"id"`
		Status     string `json:"status"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.db.UpdateServiceCallStatus(req.ID, req.Status, req.Resolution)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) deleteServiceCall(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteServiceCall(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}
