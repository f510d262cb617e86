package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sintftl/voyage/internal/auth"
	"github.com/sintftl/voyage/internal/config"
	"github.com/sintftl/voyage/internal/handler"
	"github.com/sintftl/voyage/internal/logger"
	"github.com/sintftl/voyage/internal/middleware"
	"github.com/sintftl/voyage/internal/service"
	"github.com/sintftl/voyage/internal/store/postgres"
	"github.com/sintftl/voyage/internal/store/redisstore"
	"github.com/sintftl/voyage/pkg/relay"
)

func main() {
	logger.Init()
	cfg := config.Load()
	log.Info().Str("databaseURL", cfg.DatabaseURL).Msg("Config loaded")

	// Database
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	defer db.Close()

	// Redis
	redisClient, err := redisstore.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection failed")
	}
	defer redisClient.Close()

	// Repos
	accountRepo := postgres.NewAccountRepo(db)
	roomRepo := postgres.NewRoomRepo(db)
	eventRepo := postgres.NewEventRepo(db)

	// Auth
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret)
	googleOAuth := auth.NewGoogleOAuth(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		os.Getenv("GOOGLE_REDIRECT_URL"),
	)

	// Relay (websocket hub)
	hub := relay.NewHub()
	broadcaster := handler.NewRelayBroadcaster(hub)

	// Services
	roomSvc := service.NewRoomService(roomRepo, eventRepo, redisClient, broadcaster, cfg.MaxRoomPlayers, cfg.RoomIdleTimeout)

	// Handlers
	authHandler := handler.NewAuthHandler(googleOAuth, jwtMgr, accountRepo)
	accountHandler := handler.NewAccountHandler(accountRepo)
	roomHandler := handler.NewRoomHandler(roomSvc)
	actionHandler := handler.NewActionHandler(roomSvc)
	wsHandler := handler.NewWSHandler(hub, jwtMgr, roomSvc)

	// Router
	mux := http.NewServeMux()
	authMw := auth.Middleware(jwtMgr)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth (public)
	mux.HandleFunc("GET /auth/google/login", authHandler.GoogleLogin)
	mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleCallback)
	mux.HandleFunc("POST /auth/refresh", authHandler.RefreshToken)
	mux.HandleFunc("GET /auth/dev", authHandler.DevLogin)

	// Protected API routes
	api := http.NewServeMux()
	api.HandleFunc("GET /accounts/me", accountHandler.GetMe)
	api.HandleFunc("PATCH /accounts/me", accountHandler.UpdateMe)
	api.HandleFunc("GET /accounts/{id}", accountHandler.GetAccount)
	api.HandleFunc("POST /rooms", roomHandler.CreateRoom)
	api.HandleFunc("GET /rooms", roomHandler.ListOpenRooms)
	api.HandleFunc("GET /rooms/{id}", roomHandler.GetRoom)
	api.HandleFunc("GET /rooms/{id}/state", roomHandler.GetState)
	api.HandleFunc("POST /rooms/{id}/join", roomHandler.JoinRoom)
	api.HandleFunc("DELETE /rooms/{id}", roomHandler.DeleteRoom)
	api.HandleFunc("POST /rooms/{id}/actions", actionHandler.SubmitAction)
	api.HandleFunc("GET /rooms/{id}/actions/valid", actionHandler.ValidActions)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", authMw(api)))

	// WebSocket (auth via query param, not middleware)
	mux.HandleFunc("GET /api/v1/ws", wsHandler.ServeWS)

	// Apply global middleware
	root := middleware.Chain(mux, middleware.Logger, middleware.CORS("*"), middleware.JSON)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
