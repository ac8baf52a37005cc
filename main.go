package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"galatea/pkg/config"
	"galatea/pkg/engine"
	"galatea/pkg/persona"
	"galatea/pkg/server"
	"galatea/pkg/session"
)

func main() {
	// Load config.yml
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load .env for secrets
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	// Build the persona catalog: built-ins plus any YAML descriptors
	catalog := persona.NewCatalog()
	if err := catalog.LoadDir(cfg.Personas.Dir); err != nil {
		log.Fatalf("Failed to load persona directory: %v", err)
	}
	log.Printf("Persona catalog ready: %v", catalog.IDs())

	// Session store: Redis when configured, in-memory otherwise
	var store session.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
		redisStore, err := session.NewRedisStore(redisURL, cfg.Session.RedisPrefix, ttl)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("Session store: redis")
	} else {
		store = session.NewMemoryStore()
		log.Println("REDIS_URL not set, using in-memory session store")
	}

	eng := engine.New(catalog, store)
	srv := server.New(eng, catalog, cfg.Personas.Default)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
