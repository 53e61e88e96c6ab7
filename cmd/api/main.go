package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"textlens/internal/application"
	appanalysis "textlens/internal/application/analysis"
	"textlens/internal/config"
	"textlens/internal/infra/ai/openai"
	"textlens/internal/infra/httpserver"
	"textlens/internal/infra/oauth"
	"textlens/internal/infra/session"
	"textlens/internal/infra/store"
	"textlens/internal/logging"
)

func main() {
	logging.InitLogger()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("config load error", "err", err)
		os.Exit(1)
	}

	// history lives in memory only; a restart starts empty
	history := store.NewMemory(application.SystemClock{})
	gateway := openai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	svc := appanalysis.NewService(history, gateway)

	sessions := session.NewManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		cfg.Production,
		application.SystemClock{},
	)
	sessions.StartJanitor()
	defer sessions.Stop()

	providers := []*oauth.Provider{
		oauth.NewGoogle(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.Google.CallbackURL),
		oauth.NewFacebook(cfg.OAuth.Facebook.ClientID, cfg.OAuth.Facebook.ClientSecret, cfg.OAuth.Facebook.CallbackURL),
	}

	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, sessions, providers, cfg.FrontendURL))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "err", err)
	}
}
