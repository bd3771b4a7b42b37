package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicetrack/internal/models"
)

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.db.AllSettings()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// saveSettings takes an array of {key, value} pairs and upserts each one.
// A non-array body is a 400.
func (s *Server) saveSettings(c *gin.Context) {
	var items []models.SettingInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data should be an array of settings"})
		return
	}

	for _, item := range items {
		if err := s.db.SaveSetting(item.Key, item.Value); err != nil {
			s.fail(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved"})
}
