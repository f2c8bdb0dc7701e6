package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
)

type HealthHandler struct {
	repo      repository.BookRepository
	driver    string
	startTime time.Time
	version   string
}

func NewHealthHandler(repo repository.BookRepository, driver string, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		repo:      repo,
		driver:    driver,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health reports liveness only. It never touches the store.
func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
		"store":   h.driver,
	})
}

// Ready pings the store when it is backed by a database. The memory store is
// always ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	if p, ok := h.repo.(repository.Pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"store": gin.H{
					"driver": h.driver,
					"status": "down",
					"error":  err.Error(),
				},
			})
			return
		}
	}

	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
		"store": gin.H{
			"driver": h.driver,
			"status": "up",
		},
	})
}
