package routes

import (
	"homechef-api/handlers"
	"homechef-api/middleware"
	"homechef-api/models"
	"homechef-api/store"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler group for route registration.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Public    *handlers.PublicHandler
	Meals     *handlers.MealHandler
	Orders    *handlers.OrderHandler
	Requests  *handlers.RequestHandler
	Reviews   *handlers.ReviewHandler
	Favorites *handlers.FavoriteHandler
	Admin     *handlers.AdminHandler
}

func SetupRoutes(r *gin.Engine, h Handlers, jwtSecret []byte, st *store.Store) {
	authed := middleware.AuthRequired(jwtSecret, st)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Meals & reviews (no auth needed)
		public.GET("/meals", h.Public.BrowseMeals)
		public.GET("/meals/:id", h.Public.GetMeal)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.Public.GetStateMachineInfo)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(authed)
	{
		auth.GET("/profile", h.Auth.Profile)
		auth.GET("/orders/:id", h.Orders.Get)
		auth.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		auth.PATCH("/orders/:id/payment", h.Orders.Pay)
		auth.POST("/requests", h.Requests.Submit)
		auth.GET("/requests/mine", h.Requests.ListMine)
		auth.PATCH("/requests/:id", h.Requests.Resolve)
		auth.GET("/favorites", h.Favorites.List)
		auth.POST("/favorites", h.Favorites.Add)
		auth.DELETE("/favorites/:id", h.Favorites.Remove)
		auth.GET("/reviews/mine", h.Reviews.ListMine)
		auth.PUT("/reviews/:id", h.Reviews.Update)
		auth.DELETE("/reviews/:id", h.Reviews.Delete)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(authed, middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", h.Orders.Place)
		customer.GET("/orders", h.Orders.ListMine)
		customer.POST("/reviews", h.Reviews.Create)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(authed, middleware.RoleRequired(models.RoleChef))
	{
		chef.POST("/meals", h.Meals.Create)
		chef.GET("/meals", h.Meals.ListMine)
		chef.PUT("/meals/:id", h.Meals.Update)
		chef.PATCH("/meals/:id/availability", h.Meals.SetAvailability)
		chef.DELETE("/meals/:id", h.Meals.Delete)

		chef.GET("/orders", h.Orders.ListIncoming)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(authed, middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.PATCH("/users/:id/status", h.Admin.SetUserStatus)
		admin.GET("/orders", h.Admin.ListOrders)
		admin.POST("/orders/:id/refund", h.Orders.Refund)
		admin.GET("/requests", h.Requests.List)
		admin.PUT("/meals/:id", h.Meals.Update)
		admin.DELETE("/meals/:id", h.Meals.Delete)
		admin.GET("/statistics", h.Admin.Statistics)
	}
}
