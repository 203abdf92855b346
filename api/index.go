package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"handicraft-server/config"
	"handicraft-server/models"
	"handicraft-server/routes"

	"github.com/gin-gonic/gin"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

// The client is kept for the lifetime of the function instance and reused
// across invocations.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			initErr = err
			return
		}

		logger := config.NewLogger(cfg.Log)
		app, err := routes.Bootstrap(context.Background(), cfg, logger)
		if err != nil {
			initErr = err
			logger.Error("failed to initialize application", "error", err)
			return
		}
		router = app.Router
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		slog.Error("request rejected, application not initialized", "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Service unavailable",
		})
		return
	}
	router.ServeHTTP(w, r)
}
