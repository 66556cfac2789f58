package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"phonebook/internal/auth"
	authhandler "phonebook/internal/auth/handler"
	authservice "phonebook/internal/auth/service"
	authstore "phonebook/internal/auth/store"
	phonebookhandler "phonebook/internal/phonebook/handler"
	phonebookmetrics "phonebook/internal/phonebook/metrics"
	phonebookservice "phonebook/internal/phonebook/service"
	phonebookstore "phonebook/internal/phonebook/store"
	"phonebook/internal/phonebook/validation"
	"phonebook/internal/platform/config"
	"phonebook/internal/platform/httpserver"
	"phonebook/internal/platform/logger"
	platformmetrics "phonebook/internal/platform/metrics"
	platformredis "phonebook/internal/platform/redis"
	"phonebook/internal/reference"
	"phonebook/internal/token"
	"phonebook/internal/token/revocation"
	httptransport "phonebook/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Server.Env)

	publicKey, err := token.LoadRSAPublicKey(cfg.OAuth.PublicKeyPath)
	if err != nil {
		log.Error("load public key", "error", err)
		os.Exit(1)
	}
	privateKey, err := token.LoadRSAPrivateKey(cfg.OAuth.PrivateKeyPath)
	if err != nil {
		log.Error("load private key", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	itemStore := phonebookstore.NewPostgres(db)
	if err := itemStore.EnsureSchema(context.Background()); err != nil {
		log.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it the revocation list is process-local.
	var trl revocation.List
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		trl = revocation.NewRedisList(redisClient.Client)
		log.Info("token revocation list backed by redis")
	} else {
		trl = revocation.NewMemoryList()
		log.Info("token revocation list in memory")
	}

	referenceClient := reference.NewHTTPClient(cfg.Reference.BaseURL, &http.Client{Timeout: 10 * time.Second})
	referenceCache := reference.NewCache(referenceClient, cfg.Reference.CacheTTL)

	issuer := token.NewIssuer(privateKey, cfg.OAuth.Issuer, cfg.OAuth.AccessTokenTTL)
	verifier := token.NewVerifier(publicKey, cfg.OAuth.Issuer, trl)

	clients := authstore.NewInMemoryClientStore(&auth.Client{
		ID:     cfg.OAuth.ClientID,
		Secret: cfg.OAuth.ClientSecret,
		Scopes: []string{"phonebook:read", "phonebook:write"},
	})
	authHandler := authhandler.New(authservice.New(clients, issuer), log)

	phoneBookService := phonebookservice.New(
		itemStore,
		validation.New(referenceCache),
		log,
		phonebookmetrics.New(prometheus.DefaultRegisterer),
	)
	phoneBookHandler := phonebookhandler.New(phoneBookService, log)

	router := httptransport.NewRouter(
		authHandler,
		phoneBookHandler,
		verifier,
		platformmetrics.NewHTTP(prometheus.DefaultRegisterer),
		log,
	)

	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("starting phonebook service", "addr", cfg.Server.Addr, "env", cfg.Server.Env)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
