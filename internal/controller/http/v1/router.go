// Package v1 implements routing paths. Each services in own file.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice_relay/entity"
	"voice_relay/pkg/logger"
)

const traceName = "Voice-Relay-HTTP"

// RouterConfig -.
type RouterConfig struct {
	MaxUploadBytes int64
	// Secret is scrubbed from every error body.
	Secret string
}

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, vu entity.VoiceConversionUsecase, cfg RouterConfig) {
	// Options
	handler.Use(requestID())
	handler.Use(requestLogger(l))
	handler.Use(gin.Recovery())

	// Swagger
	handler.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// K8s probe
	handler.GET("/", health)

	// Routers
	newVoiceRoutes(&handler.RouterGroup, vu, l, cfg)

	handler.NoRoute(func(c *gin.Context) {
		errorResponse(c, http.StatusNotFound, "route not found")
	})
}

type healthResponse struct {
	Status string `json:"status" example:"Backend is running"`
}

// @Summary     Health check
// @Description Reports that the relay is up
// @ID          health
// @Tags        health
// @Produce     json
// @Success     200 {object} healthResponse
// @Router      / [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "Backend is running"})
}
