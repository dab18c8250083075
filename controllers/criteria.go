package controllers

import (
	"net/http"

	"team-evaluation-api/config"

	"github.com/gin-gonic/gin"
)

// GetCriteria returns the rubric criteria the deployment scores against
func GetCriteria(c *gin.Context) {
	criteria := config.RubricCriteria()
	c.JSON(http.StatusOK, gin.H{
		"criteria": criteria,
		"total":    len(criteria),
	})
}
