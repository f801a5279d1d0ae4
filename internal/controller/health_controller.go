package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthController struct {
	Mongo *mongo.Database
	Redis *redis.Client
}

func NewHealthController(db *mongo.Database, rdb *redis.Client) *HealthController {
	return &HealthController{Mongo: db, Redis: rdb}
}

// Root godoc
// @Summary Liveness probe
// @Produce  plain
// @Success 200 {string} string "App is working..."
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "App is working...")
}

// Health godoc
// @Summary Dependency health check
// @Description Pings MongoDB and Redis and reports per-dependency status
// @Produce  json
// @Success 200 {object} map[string]string "All dependencies reachable"
// @Failure 503 {object} map[string]string "One or more dependencies down"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"mongo": "up", "redis": "up"}
	code := http.StatusOK

	if c.Mongo == nil {
		status["mongo"] = "down"
		code = http.StatusServiceUnavailable
	} else if err := c.Mongo.Client().Ping(checkCtx, nil); err != nil {
		status["mongo"] = "down"
		code = http.StatusServiceUnavailable
	}

	// Redis is optional; when the cache was unreachable at startup
	// the app runs without it, which is degraded but healthy.
	if c.Redis == nil {
		status["redis"] = "disabled"
	} else if err := c.Redis.Ping(checkCtx).Err(); err != nil {
		status["redis"] = "down"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, status)
}
