package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers for the reference master lists. Adds echo back the inserted
// row so the client can refresh its pickers without a second fetch.

func (s *Server) listAreas(c *gin.Context) {
	areas, err := s.db.ListAreas()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (s *Server) addArea(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddArea(req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "name": req.Name})
}

func (s *Server) deleteArea(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteArea(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.db.ListProducts()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) addProduct(c *gin.Context) {
	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddProduct(req.Name, req.Price)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "name": req.Name, "price": req.Price})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteProduct(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) listCommonIssues(c *gin.Context) {
	issues, err := s.db.ListCommonIssues()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (s *Server) addCommonIssue(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddCommonIssue(req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "issue_text": req.Text})
}

func (s *Server) deleteCommonIssue(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteCommonIssue(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}

func (s *Server) listCommonResolutions(c *gin.Context) {
	resolutions, err := s.db.ListCommonResolutions()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resolutions)
}

func (s *Server) addCommonResolution(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.AddCommonResolution(req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "resolution_text": req.Text})
}

func (s *Server) deleteCommonResolution(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	n, err := s.db.DeleteCommonResolution(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	changes(c, n)
}
