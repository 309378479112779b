package company

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the company resource under /companies. The
// industry catalog routes are registered before the :code wildcard so
// the static segment wins.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.POST("", handler.Create)

		companies.GET("/industries", handler.ListIndustries)
		companies.POST("/industries", handler.CreateIndustry)

		companies.GET("/:code", handler.Get)
		companies.PUT("/:code", handler.Update)
		companies.DELETE("/:code", handler.Delete)
		companies.POST("/:code/industries/:industry_code", handler.Associate)
	}
}
