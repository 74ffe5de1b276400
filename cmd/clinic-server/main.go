package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/api"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/config"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/session"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("clinic-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s backend=%s", cfg.Env, cfg.HTTPPort, cfg.StorageBackend)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	medium, cleanup, err := openMedium(rootCtx, cfg)
	if err != nil {
		log.Fatalf("storage backend error: %v", err)
	}
	defer cleanup()
	log.Printf("connected to %s", cfg.StorageBackend)

	store := clinic.NewStore(rootCtx, medium)
	sessions := session.NewManager(medium)

	router := api.NewRouter(api.RouterConfig{
		Store:    store,
		Sessions: sessions,
		Medium:   medium,
		Env:      cfg.Env,
		Version:  version,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}

	log.Println("shutting down clinic-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func openMedium(ctx context.Context, cfg config.Config) (kv.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		pg, err := kv.NewPostgresStore(connCtx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		rdb, err := kv.NewRedisStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return rdb, func() {
			if err := rdb.Close(); err != nil {
				log.Printf("error closing redis: %v", err)
			}
		}, nil
	}
}
