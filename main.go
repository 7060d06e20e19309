package main

import (
	"log"
	"net/http"

	"homechef-api/config"
	"homechef-api/handlers"
	"homechef-api/lifecycle"
	"homechef-api/middleware"
	"homechef-api/payments"
	"homechef-api/routes"
	"homechef-api/services"
	"homechef-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := config.NewLogger(cfg.GinMode)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	logger.Info("Database connected and migrated")

	var verifier payments.Verifier
	if cfg.PaymentProviderURL != "" {
		verifier = payments.NewProviderClient(cfg.PaymentProviderURL, cfg.PaymentAPIKey)
	} else {
		// local runs without a provider: nothing verifies
		verifier = payments.StaticVerifier{}
	}

	auth := &lifecycle.Authorizer{AllowAdminOrders: cfg.AllowAdminOrders}

	orderSvc := &services.OrderService{Store: st, Auth: auth, Payments: verifier, RefundGrace: cfg.RefundGraceWindow}
	mealSvc := &services.MealService{Store: st, Auth: auth}
	reviewSvc := &services.ReviewService{Store: st, Auth: auth}
	requestSvc := &services.RequestService{Store: st, Auth: auth}
	favoriteSvc := &services.FavoriteService{Store: st, Auth: auth}
	userSvc := &services.UserService{Store: st, Auth: auth}
	statsSvc := &services.StatsService{Store: st}

	h := routes.Handlers{
		Auth:      &handlers.AuthHandler{Store: st, JWTSecret: []byte(cfg.JWTSecret)},
		Public:    &handlers.PublicHandler{Meals: mealSvc, Reviews: reviewSvc},
		Meals:     &handlers.MealHandler{Meals: mealSvc},
		Orders:    &handlers.OrderHandler{Orders: orderSvc},
		Requests:  &handlers.RequestHandler{Requests: requestSvc},
		Reviews:   &handlers.ReviewHandler{Reviews: reviewSvc},
		Favorites: &handlers.FavoriteHandler{Favorites: favoriteSvc},
		Admin:     &handlers.AdminHandler{Users: userSvc, Orders: orderSvc, Stats: statsSvc},
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "HomeChef Marketplace API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, h, []byte(cfg.JWTSecret), st)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
