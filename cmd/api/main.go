package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maverick1978/3dlabmod1/internal/config"
	jwtinfra "github.com/maverick1978/3dlabmod1/internal/infrastructure/jwt"
	s3infra "github.com/maverick1978/3dlabmod1/internal/infrastructure/s3"
	"github.com/maverick1978/3dlabmod1/internal/infrastructure/sqlite"
	"github.com/maverick1978/3dlabmod1/internal/pkg/logger"
	transporthttp "github.com/maverick1978/3dlabmod1/internal/transport/http"
	"github.com/maverick1978/3dlabmod1/internal/transport/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = sqlite.Seed(seedCtx, db, sqlite.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		DemoData:      cfg.SeedDemoData,
	}, log)
	seedCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("jwt provider")
	}

	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	hub := ws.NewHub(log)
	go hub.Run(hubCtx)

	deps := &transporthttp.Deps{
		NotificationRepo: sqlite.NewNotificationRepo(db),
		UserRepo:         sqlite.NewUserRepo(db),
		TaskRepo:         sqlite.NewTaskRepo(db),
		ClassRepo:        sqlite.NewClassRepo(db),
		StudentRepo:      sqlite.NewStudentRepo(db),
		GradoRepo:        sqlite.NewGradoRepo(db),
		ProfileRepo:      sqlite.NewProfileRepo(db),
		S3Store:          s3Store,
		JWTProvider:      jwtProvider,
		Hub:              hub,
		Log:              log,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	hubCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
