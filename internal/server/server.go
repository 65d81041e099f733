// Package server provides the HTTP REST API for the career scanner.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/qatth/careerscan/internal/analysis"
	"github.com/qatth/careerscan/internal/auth"
	"github.com/qatth/careerscan/internal/chatbot"
	"github.com/qatth/careerscan/internal/config"
	"github.com/qatth/careerscan/internal/extraction"
	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/webhook"
)

// errSuperseded marks an upload whose extraction lost the race against a
// newer upload.
var errSuperseded = errors.New("superseded by a newer upload")

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	storage     storage.Store
	store       *auth.Store
	engine      *analysis.Engine
	slot        *extraction.Slot
	bot         *chatbot.Bot
	webhook     *webhook.Client
	jwtService  *JWTService
	authHandler *AuthHandler
	logger      *zap.Logger
}

// New creates a new server instance over the given config.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	backend, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	passwordConfig, err := auth.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	if cfg.SeedDemo {
		if err := auth.SeedDemoAccounts(backend, passwordConfig); err != nil {
			return nil, fmt.Errorf("failed to seed demo accounts: %w", err)
		}
	}
	store, err := auth.NewStore(backend, passwordConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	engine, err := analysis.NewDefaultEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis engine: %w", err)
	}

	client, err := webhook.NewClient(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook client: %w", err)
	}

	jwtConfig, err := NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	jwtService := NewJWTService(jwtConfig)

	s := &Server{
		storage:     backend,
		store:       store,
		engine:      engine,
		slot:        extraction.NewSlot(),
		bot:         chatbot.New(backend),
		webhook:     client,
		jwtService:  jwtService,
		authHandler: NewAuthHandler(store, jwtService),
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/logout", s.authHandler.Logout)
	mux.HandleFunc("GET /auth/me", s.authHandler.Me)

	// Account endpoints
	mux.HandleFunc("GET /features/{feature}", s.handleFeature)
	mux.HandleFunc("POST /balance/recharge", s.handleRecharge)
	mux.HandleFunc("POST /plan", s.handleUpgradePlan)

	// Scan endpoints
	mux.HandleFunc("POST /scan", s.handleScan)

	// Jobs endpoints
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)

	// Chatbot and interview endpoints
	mux.HandleFunc("POST /chatbot", s.handleChatbot)
	mux.HandleFunc("GET /interview/questions", s.handleInterviewQuestions)
	mux.HandleFunc("POST /interview/score", s.handleInterviewScore)

	// Quiz endpoints proxied to the external workflow
	mux.HandleFunc("POST /quiz", s.handleQuiz)
	mux.HandleFunc("POST /quiz/answers", s.handleQuizAnswers)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until the process is
// interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
