package app

import (
	"os"

	"biztime/internal/company"
	"biztime/internal/invoice"
	"biztime/internal/messaging/kafka"
	"biztime/internal/middleware"
	"biztime/internal/shared/apperror"
	"biztime/internal/shared/connection"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	// Redis only backs the idempotency middleware; the API runs
	// without it.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	router.Use(middleware.RequestID(zap.L()))
	router.Use(middleware.RateLimitByIP(50, 100))
	if rdb != nil {
		router.Use(middleware.Idempotency(rdb))
	}

	registerModules(router, gormDB)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound)
	})

	return nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&company.Company{},
		&company.Industry{},
		&company.CompanyIndustry{},
		&invoice.Invoice{},
		&kafka.OutboxEvent{},
	)
}
