package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"songbox/internal/config"
	apphttp "songbox/internal/http"
	"songbox/internal/repository"
	"songbox/internal/repository/memory"
	"songbox/internal/repository/sqlite"
	"songbox/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accountRepo, songRepo, closeStore, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatalf("setup store: %v", err)
	}
	defer closeStore()

	if err := accountRepo.Init(ctx); err != nil {
		logger.Fatalf("init account repository: %v", err)
	}
	if err := songRepo.Init(ctx); err != nil {
		logger.Fatalf("init song repository: %v", err)
	}

	accountService := service.NewAccountService(accountRepo)
	songService := service.NewSongService(songRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(accountService, songService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStore selects the record store implementation. Either way state lives
// only for the process lifetime: the memory store by construction, the
// sqlite store through its default :memory: DSN.
func buildStore(cfg config.Config, logger *logrus.Logger) (repository.AccountRepository, repository.SongRepository, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("using in-memory record store")
		return memory.NewAccountRepository(), memory.NewSongRepository(), func() {}, nil
	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open database: %w", err)
		}
		logger.Infof("using sqlite record store at %s", cfg.Database.Path)
		return sqlite.NewAccountRepository(db), sqlite.NewSongRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
