package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apponislam/vinies709-backend/domain"
	"github.com/apponislam/vinies709-backend/internal/config"
	httpx "github.com/apponislam/vinies709-backend/internal/http"
	"github.com/apponislam/vinies709-backend/internal/http/handlers"
	"github.com/apponislam/vinies709-backend/internal/http/middleware"
	"github.com/apponislam/vinies709-backend/internal/infrastructure/auth"
	"github.com/apponislam/vinies709-backend/internal/infrastructure/database"
	"github.com/apponislam/vinies709-backend/internal/infrastructure/notifications"
	"github.com/apponislam/vinies709-backend/internal/infrastructure/repositories"
	"github.com/apponislam/vinies709-backend/internal/services"
)

func Run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	secretGen := auth.NewSecretGenerator()

	userRepo := repositories.NewUserRepository(gdb)

	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	dispatcher := notifications.NewDispatcher(mailer, logger, cfg.MailQueueSize, cfg.MailWorkers)
	defer dispatcher.Close()

	accountSvc := services.NewAccountService(userRepo, passwordSvc, tokenSvc, secretGen, dispatcher, services.Config{
		ClientURL:       cfg.ClientURL,
		OTPLength:       cfg.OTPLength,
		OTPTTL:          cfg.OTPTTL,
		ResetTokenTTL:   cfg.ResetTokenTTL,
		VerificationTTL: cfg.VerificationTTL,
		EmailChangeTTL:  cfg.EmailChangeTTL,
	})

	if err := services.SeedManager(context.Background(), userRepo, passwordSvc, logger, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		logger.Error("manager seeding failed", slog.Any("error", err))
	}

	authH := handlers.NewAuthHandlers(accountSvc, cfg.Env, cfg.RefreshTTL)
	accountH := handlers.NewAccountHandlers(accountSvc)

	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, accountH, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_"+domain.RoleManager, "/auth/users/*", "POST")
		_ = cas.E.SavePolicy()
		logger.Info("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	logger.Info("listening", slog.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
