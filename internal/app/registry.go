package app

import (
	"biztime/internal/company"
	"biztime/internal/invoice"
	"biztime/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, gormDB *gorm.DB) {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	invoiceService := invoice.NewServiceWithOutbox(gormDB, invoiceRepo, outboxRepo)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	invoiceHandler := invoice.NewHandler(invoiceService)

	// --- Routes Registration ---
	root := router.Group("")
	{
		company.RegisterRoutes(root, companyHandler)
		invoice.RegisterRoutes(root, invoiceHandler)
	}
}
