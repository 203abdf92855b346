package controllers

import (
	"context"
	"net/http"
	"time"

	"handicraft-server/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const livenessMessage = "Handicraft Businesses server is running"

type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Root godoc
// @Summary Liveness
// @Tags Health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (ctrl *HealthController) Root(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

// Health godoc
// @Summary Readiness
// @Description Pings the database
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.db.Ping(ctx, readpref.Primary()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
