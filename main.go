// DevJournal accounts service: credential-based login, new-user
// registration, and identity lookup over JSON/HTTP, issuing signed bearer
// tokens.
//
// @title DevJournal Accounts API
// @version 1.0
// @description Credential-based login, registration, and identity lookup for user accounts.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/devjournal-go/apperror"
	"github.com/user/devjournal-go/auth"
	"github.com/user/devjournal-go/config"
	"github.com/user/devjournal-go/db"
	_ "github.com/user/devjournal-go/docs" // generated Swagger docs
	"github.com/user/devjournal-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	// Missing configuration (including the signing secret) is a startup-time
	// failure, never a per-request one.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.EnableExtensions(pool); err != nil {
		log.Fatalf("Failed to enable extensions: %v", err)
	}

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	issuer := auth.NewTokenIssuer(*cfg.Auth)
	store := auth.NewPostgresStore(pool)
	authService := auth.NewAuthService(store, issuer)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(authService)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered before
	// any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that renders the standard error envelope. Token-signing
	// failures surface here: they escape the handlers by design and become
	// opaque 500s.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Registration.
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", authHandlers.HandleRegister())
	})

	// Login, and identity lookup behind the bearer-token middleware.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/", authHandlers.HandleLogin())
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(issuer))
			r.Get("/", userHandlers.HandleGetCurrentUser())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid an import cycle with the handler packages.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"errors":[{"message":"server error"}]}`, http.StatusInternalServerError)
	}
}
