package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the shared API group. All routes
// are public; the planner has no authenticated surface.
type Controller interface {
	Register(*gin.RouterGroup)
}
