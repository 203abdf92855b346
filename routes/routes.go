package routes

import (
	"log/slog"

	"handicraft-server/config"
	"handicraft-server/controllers"
	_ "handicraft-server/docs"
	"handicraft-server/middleware"
	"handicraft-server/repositories"
	"handicraft-server/services"
	"handicraft-server/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	Config   *config.Config
	Logger   *slog.Logger
	Repos    *repositories.Repositories
	DB       controllers.Pinger
	Notifier services.OrderNotifier
	// Orders is built from Repos and Notifier when nil.
	Orders *services.OrderService
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.CORSMiddleware(opts.Config.OriginURL, opts.Config.Features.Auth))

	SetupRoutes(router, opts)
	return router
}

func SetupRoutes(router *gin.Engine, opts Options) {
	features := opts.Config.Features

	healthCtrl := controllers.NewHealthController(opts.DB)
	userCtrl := controllers.NewUserController(services.NewUserService(opts.Repos.Users))

	router.GET("/", healthCtrl.Root)
	router.GET("/health", healthCtrl.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/users", userCtrl.CreateUser)

	protected := router.Group("/")
	if features.Auth {
		authService := services.NewAuthService(utils.NewTokenManager(opts.Config.Auth.AccessTokenSecret))
		authCtrl := controllers.NewAuthController(authService, utils.NewCookiePolicy(opts.Config.IsProduction()))

		router.POST("/jwt", authCtrl.IssueToken)
		router.GET("/logout", authCtrl.Logout)

		protected.Use(middleware.AuthMiddleware(authService))
	}

	{
		protected.GET("/users", userCtrl.GetAllUsers)
		protected.GET("/users/:email", userCtrl.GetUserByEmail)
		protected.PATCH("/users", userCtrl.UpdateLastLogin)
		protected.PUT("/users/:email", middleware.OwnerMiddleware("email"), userCtrl.UpdateProfile)
	}

	if features.Shop {
		shopCtrl := controllers.NewShopController(services.NewShopService(opts.Repos.Shops))

		router.GET("/shop", shopCtrl.GetAllShops)
		router.GET("/shop/:id", shopCtrl.GetShopByID)
	}

	if features.Orders {
		orderService := opts.Orders
		if orderService == nil {
			orderService = services.NewOrderService(opts.Repos.Orders, opts.Notifier, opts.Logger)
		}
		orderCtrl := controllers.NewOrderController(orderService)

		protected.GET("/order", orderCtrl.GetAllOrders)
		protected.POST("/order", orderCtrl.CreateOrder)
		protected.GET("/order/:email", middleware.OwnerMiddleware("email"), orderCtrl.GetOrdersByEmail)
	}
}
