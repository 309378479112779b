package company

import (
	"net/http"

	"biztime/internal/shared/apperror"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list companies failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"companies": companies})
}

func (h *Handler) Get(c *gin.Context) {
	comp, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"company": comp})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("create company failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"company": comp})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"company": comp})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}

func (h *Handler) CreateIndustry(c *gin.Context) {
	var req CreateIndustryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	ind, err := h.service.CreateIndustry(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("create industry failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"industry": ind})
}

func (h *Handler) ListIndustries(c *gin.Context) {
	industries, err := h.service.ListIndustries(c.Request.Context())
	if err != nil {
		h.logger.Error("list industries failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"industries": industries})
}

func (h *Handler) Associate(c *gin.Context) {
	compCode := c.Param("code")
	industryCode := c.Param("industry_code")

	if err := h.service.Associate(c.Request.Context(), compCode, industryCode); err != nil {
		h.logger.Error("associate industry failed",
			zap.String("comp_code", compCode),
			zap.String("industry_code", industryCode),
			zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Industry " + industryCode + " associated with company " + compCode,
	})
}
