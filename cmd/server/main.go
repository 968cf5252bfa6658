// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/nordsted/juridisk-ai/internal/config"
	"github.com/nordsted/juridisk-ai/internal/domain"
	"github.com/nordsted/juridisk-ai/internal/handlers"
	"github.com/nordsted/juridisk-ai/internal/middleware"
	"github.com/nordsted/juridisk-ai/internal/ratelimit"
	chatrepo "github.com/nordsted/juridisk-ai/internal/repository/chat"
	messagerepo "github.com/nordsted/juridisk-ai/internal/repository/message"
	userrepo "github.com/nordsted/juridisk-ai/internal/repository/user"
	"github.com/nordsted/juridisk-ai/internal/services"
	chatservice "github.com/nordsted/juridisk-ai/internal/services/chat"
	"github.com/nordsted/juridisk-ai/internal/services/completion"
	"github.com/nordsted/juridisk-ai/internal/services/reveal"
	"github.com/nordsted/juridisk-ai/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// newProvider selects the upstream answer provider from configuration.
func newProvider(cfg *config.Config, logger services.Logger) completion.Provider {
	completionCfg := completion.DefaultConfig()
	completionCfg.GeminiAPIKey = cfg.GeminiAPIKey
	if cfg.GeminiModelName != "" {
		completionCfg.GeminiModel = cfg.GeminiModelName
	}
	completionCfg.OpenAIKey = cfg.OpenAIAPIKey
	completionCfg.OpenAIBaseURL = cfg.OpenAIBaseURL
	if cfg.OpenAIModelName != "" {
		completionCfg.OpenAIModel = cfg.OpenAIModelName
	}

	if strings.ToLower(cfg.CompletionProvider) == "openai" {
		return completion.NewOpenAIProvider(completionCfg)
	}
	return completion.NewGeminiProvider(completionCfg, logger)
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("juridisk-ai")

	// SQLite only honors the ON DELETE CASCADE constraints with the
	// foreign_keys pragma on; without it deleted chats orphan their messages.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath+"?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.ChatMessage{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	chatRepo := chatrepo.NewChatRepository(db)
	messageRepo := messagerepo.NewMessageRepository(db)

	// --- Services ---
	jwtSecret := []byte(cfg.JWTSecretKey)
	authService := user_services.NewAuthService(userRepo, jwtSecret, logger)
	chatService := chatservice.NewService(chatRepo, messageRepo, logger)
	completionService := completion.NewService(newProvider(cfg, logger), logger)
	presenter := reveal.NewPresenter(reveal.DefaultConfig())

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	completionHandler := handlers.NewCompletionHandler(completionService, chatService, presenter)

	// --- Rate Limiters ---
	authLimitCfg := ratelimit.DefaultAuthConfig()
	if cfg.AuthRateLimit > 0 {
		authLimitCfg.MaxAttempts = cfg.AuthRateLimit
	}
	authLimiter := ratelimit.NewMemoryRateLimiter(authLimitCfg)
	defer authLimiter.Close()
	completionLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.CompletionConfig())
	defer completionLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware(jwtSecret)

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.HandleFunc("/api/log", handlers.LogFrontendEvent).Methods("POST")

	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	authRoutes.Use(middleware.AuthSuccessMiddleware(authLimiter, "auth"))
	authRoutes.HandleFunc("/register", authHandler.Register).Methods("POST")
	authRoutes.HandleFunc("/login", authHandler.Login).Methods("POST")
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Protected Routes ---
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/chats", chatHandler.ListChats).Methods("GET")
	protected.HandleFunc("/chats", chatHandler.CreateChat).Methods("POST")
	protected.HandleFunc("/chats/{id:[0-9]+}", chatHandler.GetChat).Methods("GET")
	protected.HandleFunc("/chats/{id:[0-9]+}", chatHandler.DeleteChat).Methods("DELETE")
	protected.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.SaveMessages).Methods("POST")

	completions := protected.PathPrefix("/completions").Subrouter()
	completions.Use(middleware.RateLimitMiddleware(completionLimiter, "completion"))
	completions.HandleFunc("", completionHandler.Answer).Methods("POST")
	completions.HandleFunc("/stream", completionHandler.Stream).Methods("POST")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Juridisk AI - juridisk assistent")
	log.Printf("Server starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped.")
}
