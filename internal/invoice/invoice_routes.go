package invoice

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("", handler.List)
		invoices.POST("", handler.Create)
		invoices.GET("/:id", handler.Get)
		invoices.PUT("/:id", handler.Update)
		invoices.DELETE("/:id", handler.Delete)
	}
}
