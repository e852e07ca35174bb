package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/auth"
	"github.com/foodbridge/foodbridge/internal/config"
	"github.com/foodbridge/foodbridge/internal/contact"
	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/donation"
	mware "github.com/foodbridge/foodbridge/internal/middleware"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/profile"
	"github.com/foodbridge/foodbridge/internal/store"
)

func main() {
	// .env is optional; deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	database := db.Connect(cfg)

	users := store.NewMongoUsers(database)
	donations := store.NewMongoDonations(database)
	contacts := store.NewMongoContacts(database)

	e := newServer(cfg, users, donations, contacts)
	if err := e.Start(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newServer wires middleware, handlers and routes onto a fresh echo instance.
func newServer(cfg config.App, users store.Users, donations store.Donations, contacts store.Contacts) *echo.Echo {
	authHandler := auth.NewHandler(users, cfg.JWTSecret)
	donationHandler := donation.NewHandler(donations, users)
	profileHandler := profile.NewHandler(users)
	contactHandler := contact.NewHandler(contacts)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.Handler(cfg.Production())

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "foodbridge"})
	})

	// Public routes
	// Auth routes with per-IP rate limiting to protect register/login from abuse
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	e.GET("/donations", donationHandler.ListAvailable)
	e.POST("/contact", contactHandler.Submit)

	// Protected routes
	api := e.Group("")
	api.Use(mware.JWT(cfg.JWTSecret))

	api.GET("/auth/me", authHandler.Me)

	api.POST("/donations", donationHandler.Create, mware.RequireRoles(models.RoleRestaurant))
	api.PATCH("/donations/:id", donationHandler.Update)
	api.DELETE("/donations/:id", donationHandler.Delete)

	api.GET("/profile", profileHandler.Get)
	api.PATCH("/profile", profileHandler.Update)
	api.GET("/profile/donations", donationHandler.ListMine)

	return e
}
