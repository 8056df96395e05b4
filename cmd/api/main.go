package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/config"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	accountHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/account"
	assignmentHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/assignment"
	authHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/auth"
	backupHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/backup"
	garansiHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/garansi"
	promHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/prometheus"
	reportHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/report"
	statsHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/stats"
	userHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/user"
	whatsappHandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/whatsapp"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/middleware"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/migrations"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository/postgres"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/router"
	accountService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/account"
	assignmentService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/assignment"
	authService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/auth"
	backupService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/backup"
	garansiService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/garansi"
	reportService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/report"
	statsService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/stats"
	userService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/user"
	whatsappService "github.com/vladimirahmad90-oss/AccountManagement/internal/service/whatsapp"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/auth"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/logger"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/security"
)

func main() {
	logger.Setup(logger.InfoLevel)
	requestLog := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migrations.Run(db.DB, cfg.Migrations.Dir); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	base := postgres.NewBaseRepository(db)
	accountRepo := postgres.NewAccountRepository(base)
	assignmentRepo := postgres.NewAssignmentRepository(base)
	garansiRepo := postgres.NewGaransiRepository(base)
	reportRepo := postgres.NewReportRepository(base)
	whatsappRepo := postgres.NewWhatsappRepository(base)
	activityRepo := postgres.NewActivityRepository(base)
	statsRepo := postgres.NewStatisticsRepository(base)
	userRepo := postgres.NewUserRepository(base)
	backupRepo := postgres.NewBackupRepository(base)

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewTokenMaker(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	accountSvc := accountService.NewService(accountRepo)
	assignmentSvc := assignmentService.NewService(assignmentRepo)
	garansiSvc := garansiService.NewService(garansiRepo)
	reportSvc := reportService.NewService(reportRepo)
	whatsappSvc := whatsappService.NewService(whatsappRepo)
	statsSvc := statsService.NewService(statsRepo, activityRepo)
	userSvc := userService.NewService(userRepo, hasher)
	backupSvc := backupService.NewService(backupRepo)
	authSvc := authService.NewService(userRepo, hasher, tokens)

	if err := seedAdmin(userSvc, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(base.GetDB()),
		Auth:       authHandler.NewHandler(authSvc),
		Account:    accountHandler.NewHandler(accountSvc),
		Assignment: assignmentHandler.NewHandler(assignmentSvc),
		Garansi:    garansiHandler.NewHandler(garansiSvc),
		Report:     reportHandler.NewHandler(reportSvc),
		Whatsapp:   whatsappHandler.NewHandler(whatsappSvc),
		User:       userHandler.NewHandler(userSvc),
		Stats:      statsHandler.NewHandler(statsSvc),
		Backup:     backupHandler.NewHandler(backupSvc),
		Metrics:    promHandler.New(),
	}

	r := router.NewRouter(authMiddleware, handlers, router.Config{
		Logger:     requestLog,
		RateLimit:  50,
		RateBurst:  100,
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

// seedAdmin creates the built-in admin user on first start. An existing
// admin row is left untouched.
func seedAdmin(users *userService.Service, cfg config.AdminConfig) error {
	if cfg.InitialPassword == "" {
		return nil
	}

	_, err := users.Create(context.Background(), &model.CreateUserRequest{
		Username: model.AdminUsername,
		Password: cfg.InitialPassword,
		Role:     model.RoleAdmin,
		Name:     "Administrator",
	})
	if apperrors.IsKind(err, apperrors.KindConflict) {
		return nil
	}
	if err == nil {
		log.Info().Msg("created initial admin user")
	}
	return err
}
