package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicetrack/internal/models"
)

func (s *Server) listRepairs(c *gin.Context) {
	filter := models.RepairFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	repairs, err := s.db.ListRepairRecords(filter)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, repairs)
}

func (s *Server) addRepair(c *gin.Context) {
	var input models.RepairRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddRepairRecord(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) updateRepair(c *gin.Context) {
	var input models.RepairRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.db.UpdateRepairRecord(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) deleteRepair(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteRepairRecord(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}
