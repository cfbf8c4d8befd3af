package utils

import (
	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body to a struct.
// If the body is not valid JSON for obj, it sends a BadRequest response and returns false.
// Field rules are enforced by the services, which own the validate tags.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
