package handler

import (
	"github.com/bhavika1504/my-finance-planner/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the user placed into the context by the auth
// middleware, or nil when the request is unauthenticated.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
