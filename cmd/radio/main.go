package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/config"
	"github.com/acllc88/bugleboy-radio/internal/auth"
	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/database"
	"github.com/acllc88/bugleboy-radio/internal/geo"
	"github.com/acllc88/bugleboy-radio/internal/handlers"
	"github.com/acllc88/bugleboy-radio/internal/liveconfig"
	"github.com/acllc88/bugleboy-radio/internal/middleware"
	"github.com/acllc88/bugleboy-radio/internal/player"
	"github.com/acllc88/bugleboy-radio/internal/radio"
	"github.com/acllc88/bugleboy-radio/internal/repository"
	"github.com/acllc88/bugleboy-radio/internal/stations"
	"github.com/acllc88/bugleboy-radio/internal/store"
	"github.com/acllc88/bugleboy-radio/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	clk := clock.Real{}

	// Document store: Redis-backed normally, in-memory as a degraded
	// single-process fallback.
	var st store.Store
	redisStore, err := store.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Running with in-memory store - presence and chat will not be shared")
		st = store.NewMemoryStore(clk)
	} else {
		defer redisStore.Close()
		st = redisStore
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	userRepo := repository.NewUserRepository(db)
	catalog := stations.NewCatalog()
	geoClient := geo.NewClient(cfg.Geo.BaseURL)

	// UI event hub
	hub := websocket.NewHub()
	go hub.Run()

	relay := player.NewRelay()
	svc := radio.NewService(st, clk, geoClient, catalog, websocket.NewHubNotifier(hub), hub, relay.Factory())
	svc.Start()

	// Admin surface
	adminSessions := liveconfig.NewAdminSessions(cfg.Admin.Username, cfg.Admin.Password, clk)
	console := liveconfig.NewConsole(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtService, svc)
	stationsHandler := handlers.NewStationsHandler(catalog, svc.Favorites())
	playerHandler := handlers.NewPlayerHandler(svc, relay)
	chatHandler := handlers.NewChatHandler(svc)
	presenceHandler := handlers.NewPresenceHandler(svc)
	adminHandler := handlers.NewAdminHandler(adminSessions, svc.ConfigChannel(), console)
	wsHandler := websocket.NewHandler(hub, jwtService, svc, cfg.CORS.AllowedOrigins)

	// Initialize rate limiter for chat sends
	rateLimiter := middleware.NewRateLimiter(cfg.Chat.RateLimitMessagesPerSec)
	rateLimiter.Cleanup()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// WebSocket endpoint for UI clients
	router.GET("/ws", wsHandler.HandleWebSocket)

	// Live audio relay
	router.GET("/stream", playerHandler.Stream)

	api := router.Group("/api/v1")
	{
		// Catalog
		api.GET("/stations", stationsHandler.List)
		api.GET("/genres", stationsHandler.Genres)
		api.GET("/stations/:id", stationsHandler.Get)

		// Playback; listening requires no account
		api.GET("/player", playerHandler.Status)
		api.POST("/player/play", playerHandler.Play)
		api.POST("/player/toggle", playerHandler.Toggle)
		api.POST("/player/volume", playerHandler.Volume)
		api.POST("/player/mute", playerHandler.Mute)

		// Chat is readable by everyone
		api.GET("/chat", chatHandler.History)

		// Live roster
		api.GET("/online", presenceHandler.Online)

		// Settings feed the maintenance gate and announcements
		api.GET("/settings", adminHandler.GetSettings)
	}

	// Protected routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/me", authHandler.GetMe)
		authed.POST("/logout", authHandler.Logout)

		authed.POST("/chat", middleware.RateLimitMiddleware(rateLimiter), chatHandler.Send)
		authed.POST("/chat/open", chatHandler.Open)
		authed.POST("/chat/close", chatHandler.Close)

		authed.POST("/stations/:id/favorite", stationsHandler.ToggleFavorite)
		authed.GET("/favorites", stationsHandler.ListFavorites)
	}

	// Admin routes
	admin := router.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		gated := admin.Group("")
		gated.Use(adminHandler.RequireSession())
		{
			gated.POST("/logout", adminHandler.Logout)
			gated.PUT("/settings", adminHandler.SaveSettings)
			gated.GET("/stats", adminHandler.Stats)
			gated.POST("/purge/chat", adminHandler.PurgeChat)
			gated.POST("/purge/presence", adminHandler.PurgePresence)
		}
	}

	// Start server
	addr := ":" + cfg.Server.Port
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Printf("Starting radio daemon on %s (env: %s)", addr, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Shutdown: service first so the presence record is deleted and the
	// transport released, then the HTTP surface.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	svc.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Shutdown complete")
}
