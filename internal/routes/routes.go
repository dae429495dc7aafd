package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/config"
	"github.com/example/wanderlust/internal/handlers"
	"github.com/example/wanderlust/internal/middleware"
	"github.com/example/wanderlust/internal/retry"
	"github.com/example/wanderlust/internal/services"
	"github.com/example/wanderlust/internal/store"
)

// Dependencies are the long-lived objects the handlers share.
type Dependencies struct {
	Site        *store.SiteStore
	Itineraries *store.ItineraryStore
	Generator   services.Generator
	// Notifier defaults to a TelegramService built from the config.
	Notifier handlers.MessageNotifier
	// RetryOptions tune the AI rate limit backoff.
	RetryOptions []retry.Option
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, deps Dependencies) {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	}

	settingsHandler := handlers.NewSettingsHandler(deps.Site)
	authHandler := handlers.NewAuthHandler(deps.Site, cfg)
	contactHandler := handlers.NewContactHandler(deps.Site, notifier)
	itineraryHandler := handlers.NewItineraryHandler(deps.Itineraries)
	aiHandler := handlers.NewAIHandler(
		services.NewConcierge(deps.Generator, deps.Site, deps.RetryOptions...),
		services.NewPlanner(deps.Generator, deps.RetryOptions...),
	)

	blogHandler := handlers.NewBlogHandler(deps.Site)
	destinationHandler := handlers.NewDestinationHandler(deps.Site)
	dealHandler := handlers.NewDealHandler(deps.Site)
	gearHandler := handlers.NewGearHandler(deps.Site)

	api := app.Group("/api")
	api.Get("/health", handlers.Health)

	// Site settings
	api.Get("/settings", settingsHandler.GetSettings)
	api.Get("/seo", settingsHandler.GetSEO)

	// Content
	blogHandler.RegisterPublicRoutes(api.Group("/blog"))
	destinationHandler.RegisterPublicRoutes(api.Group("/destinations"))
	dealHandler.RegisterPublicRoutes(api.Group("/deals"))
	gearHandler.RegisterPublicRoutes(api.Group("/gear"))

	api.Post("/contact", contactHandler.Submit)

	// AI concierge and planner
	limiter := middleware.NewRateLimiter(cfg.AIRatePerMinute)
	ai := api.Group("/ai", limiter.Limit())
	ai.Post("/concierge", aiHandler.Ask)
	ai.Post("/itinerary", aiHandler.Plan)

	itineraries := api.Group("/itineraries")
	itineraries.Get("/", itineraryHandler.List)
	itineraries.Post("/", itineraryHandler.Save)
	itineraries.Delete("/:id", itineraryHandler.Delete)

	// Admin auth
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)

	// Protected admin routes
	protected := admin.Group("", middleware.AuthMiddleware(cfg, deps.Site))
	protected.Get("/me", authHandler.Me)
	protected.Get("/settings", settingsHandler.GetAdminSettings)
	protected.Put("/settings", settingsHandler.UpdateSettings)

	blogHandler.RegisterAdminRoutes(protected.Group("/blog"))
	destinationHandler.RegisterAdminRoutes(protected.Group("/destinations"))
	dealHandler.RegisterAdminRoutes(protected.Group("/deals"))
	gearHandler.RegisterAdminRoutes(protected.Group("/gear"))

	protected.Get("/messages", contactHandler.ListMessages)
	protected.Put("/messages/:id/read", contactHandler.MarkRead)
	protected.Delete("/messages/:id", contactHandler.DeleteMessage)
}
