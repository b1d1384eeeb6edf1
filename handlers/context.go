package handlers

import "github.com/gin-gonic/gin"

// professionalID reads the authenticated tenant set by the auth middleware.
func professionalID(c *gin.Context) string {
	id, _ := c.Get("professionalID")
	s, _ := id.(string)
	return s
}
