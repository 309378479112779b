package response

import (
	"biztime/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// JSON writes a success payload as-is. Handlers pass the keyed shape
// they own, e.g. gin.H{"company": comp}.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error funnels every failure through the single wire contract:
// {"error": <status>, "message": <text>}.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, httpErr)
}

// Deleted is the body returned by successful DELETEs.
func Deleted(c *gin.Context) {
	c.JSON(200, gin.H{"status": "Deleted"})
}
