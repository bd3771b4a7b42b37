package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicetrack/internal/models"
)

func (s *Server) listAmcRecords(c *gin.Context) {
	filter := models.AmcFilter{
		Status:       c.Query("status"),
		ExpiringSoon: c.Query("expiringSoon") == "true",
	}

	records, err := s.db.ListAmcRecords(filter)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) addAmcRecord(c *gin.Context) {
	var input models.AmcRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddAmcRecord(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) updateAmcRecord(c *gin.Context) {
	var input models.AmcRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.db.UpdateAmcRecord(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) deleteAmcRecord(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteAmcRecord(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}
