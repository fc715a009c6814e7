// Command pension-backend wires the configuration, stores, services and HTTP
// router together and runs the API server with graceful shutdown.
//
// @title Pension Backend API
// @version 1.0
// @description REST backend for managing pension records, users and AI helpers.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/pension-backend/ai"
	"github.com/user/pension-backend/apperror"
	"github.com/user/pension-backend/auth"
	"github.com/user/pension-backend/config"
	"github.com/user/pension-backend/db"
	_ "github.com/user/pension-backend/docs" // generated Swagger spec
	"github.com/user/pension-backend/pension"
	"github.com/user/pension-backend/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.EnableExtensions(pool); err != nil {
		log.Fatalf("Failed to enable extensions: %v", err)
	}
	if err := db.RunMigrations(cfg.Database, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userStore, err := users.NewFileStore(cfg.Store.UserFilePath)
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}

	crypter, err := auth.NewCrypter(cfg.Auth.TokenSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token codec: %v", err)
	}

	// Manual dependency injection: every service receives its collaborators
	// through its constructor.
	authService := auth.NewService(userStore)
	authHandlers := auth.NewHandlers(authService, crypter)

	userHandlers := users.NewHandlers(userStore)

	pensionService := pension.NewService(pool)
	pensionHandlers := pension.NewHandlers(pensionService)

	// The AI routes stay mounted even without Google Cloud credentials; an
	// unavailable generator turns every call into a server error instead.
	var generator ai.TextGenerator
	vertexGenerator, err := ai.NewVertexGenerator(context.Background(), cfg.AI)
	if err != nil {
		log.Printf("Warning: Vertex AI client unavailable: %v", err)
		generator = ai.NewUnavailableGenerator(err)
	} else {
		defer vertexGenerator.Close()
		generator = vertexGenerator
	}
	aiService := ai.NewService(generator)
	aiHandlers := ai.NewHandlers(aiService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
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

	// Convert panics that escape a handler into the standard error envelope.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					apperror.WriteError(ww, req, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, req)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandlers.HandleLogin())
		r.Post("/signup", authHandlers.HandleSignup())
		r.Post("/logout", authHandlers.HandleLogout())
	})

	r.Route("/api/user", func(r chi.Router) {
		userHandlers.RegisterRoutes(r)
	})

	r.Route("/api/pension", func(r chi.Router) {
		pensionHandlers.RegisterRoutes(r)
	})

	// AI routes are only for logged-in users.
	r.Route("/api/ai", func(r chi.Router) {
		r.Use(auth.RequireUser(crypter))
		aiHandlers.RegisterRoutes(r)
	})

	// Static frontend assets, with index.html as the catch-all for client-side
	// routing.
	r.NotFound(spaHandler("./public"))

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
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// spaHandler serves files from root and falls back to index.html for paths
// that do not match a file, so deep links into the frontend still load.
func spaHandler(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apperror.WriteError(w, r, apperror.NewNotFoundError("Route not found", nil))
			return
		}

		requested := filepath.Join(root, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		index := filepath.Join(root, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
