package routes

import (
	"context"
	"log/slog"

	"handicraft-server/config"
	"handicraft-server/libs"
	"handicraft-server/repositories"
	"handicraft-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// App is the wired application shared by the standalone server and the
// serverless handler.
type App struct {
	Router *gin.Engine
	Client *mongo.Client

	orders *services.OrderService
	logger *slog.Logger
}

// Bootstrap connects to the database and builds the router.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client, err := config.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	var notifier services.OrderNotifier
	if cfg.SMTP.Enabled() {
		notifier = libs.NewMailer(cfg.SMTP)
		logger.Info("order confirmation mail enabled", "smtp_host", cfg.SMTP.Host)
	}

	repos := repositories.New(client.Database(cfg.DB.Name))
	orders := services.NewOrderService(repos.Orders, notifier, logger)

	router := NewRouter(Options{
		Config:   cfg,
		Logger:   logger,
		Repos:    repos,
		DB:       client,
		Notifier: notifier,
		Orders:   orders,
	})

	return &App{
		Router: router,
		Client: client,
		orders: orders,
		logger: logger,
	}, nil
}

// Close waits for background confirmation mail, bounded by ctx, then
// disconnects from the database.
func (a *App) Close(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		a.orders.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Warn("shutdown before pending confirmation mail was sent", "error", ctx.Err())
	}

	config.CloseDB(ctx, a.Client, a.logger)
}
