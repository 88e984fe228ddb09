package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/authcore/face-auth/internal/config"   // Internal config loader
	"github.com/authcore/face-auth/internal/database" // MySQL pool + schema
	"github.com/authcore/face-auth/internal/handler"
	"github.com/authcore/face-auth/internal/middleware"
	"github.com/authcore/face-auth/internal/queue"
	"github.com/authcore/face-auth/internal/repository"
	"github.com/authcore/face-auth/internal/router"
	queue_publisher "github.com/authcore/face-auth/internal/service"
	"github.com/authcore/face-auth/internal/session"
	"github.com/authcore/face-auth/internal/validation"
)

func main() {
	cfg := config.Load() // Load environment config (plus optional .env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	users := repository.NewUserRepo(db)
	embeddings := repository.NewEmbeddingRepo(db)

	registration := validation.NewRegisterValidator(users, cfg.BcryptCost)
	logins := validation.NewLoginValidator(users)
	resolver := session.NewResolver(users)

	auth := handler.NewAuthHandler(registration, logins, resolver, queue_publisher.Publisher{})
	embed := handler.NewEmbeddingHandler(embeddings)

	// Redis is optional: when it is unreachable the limiter degrades to
	// a pass-through instead of blocking startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Persist embedding vectors arriving from the face pipeline.
	go queue.StartEmbeddingConsumer(embeddings)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, limiter)
	router.RegisterEmbeddings(e, embed, resolver)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
