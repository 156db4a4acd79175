package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db"`
}

type HealthController struct {
	serviceName string
	version     string
	db          *gorm.DB
}

func NewHealthController(serviceName, version string, db *gorm.DB) *HealthController {
	return &HealthController{
		serviceName: serviceName,
		version:     version,
		db:          db,
	}
}

func (c *HealthController) HealthCheck(ctx *gin.Context) {
	dbStatus := "disabled"
	if c.db != nil {
		dbStatus = "up"
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 1*time.Second)
		defer cancel()

		sqlDB, err := c.db.DB()
		if err != nil || sqlDB.PingContext(pingCtx) != nil {
			dbStatus = "down"
		}
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   c.serviceName,
		Version:   c.version,
		DB:        dbStatus,
	})
}

func (c *HealthController) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", c.HealthCheck)
	r.GET("/healthz", c.HealthCheck)
}
