package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"foodshare/cmd/app"
	"foodshare/internal/config"
	handlers "foodshare/internal/handler"
	"foodshare/internal/middleware"
	"foodshare/internal/service"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)

	router.HandleFunc("/api/posts/{id}/claim", handler.ClaimPost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/pickup", handler.ConfirmPickup).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/complete", handler.ConfirmCompletion).Methods(http.MethodPost)

	router.HandleFunc("/api/posts/{id}/photos", handler.AddPhoto).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/photos/{photoId}", handler.DeletePhoto).Methods(http.MethodDelete)

	router.HandleFunc("/api/me/posts", handler.GetMyPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/me/claims", handler.GetMyClaims).Methods(http.MethodGet)
	router.HandleFunc("/api/me/stats", handler.GetMyStats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// фоновый перевод просроченных Active постов в Expired
	go runExpirySweeper(services.Post, cfg.ExpirySweepInterval)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

func runExpirySweeper(posts service.PostService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		expired, err := posts.ExpireOverdue(context.Background(), time.Now())
		if err != nil {
			log.Printf("Ошибка при истечении постов: %v", err)
			continue
		}
		if expired > 0 {
			log.Printf("Истекло постов: %d", expired)
		}
	}
}
