package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicetrack/internal/models"
)

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.db.ListCustomers()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) addCustomer(c *gin.Context) {
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddCustomer(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Customer added"})
}

func (s *Server) updateCustomer(c *gin.Context) {
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.db.UpdateCustomer(input)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteCustomer(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}
