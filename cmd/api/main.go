package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fieldsight-backend/internal/adapter/http"
	appmw "fieldsight-backend/internal/adapter/middleware"
	"fieldsight-backend/internal/adapter/repository/mysql"
	"fieldsight-backend/internal/auth"
	"fieldsight-backend/internal/config"
	"fieldsight-backend/internal/infrastructure/cache"
	"fieldsight-backend/internal/infrastructure/db"
	"fieldsight-backend/internal/platform/logging"
	"fieldsight-backend/internal/rbac"
	"fieldsight-backend/internal/usecase/account"
	"fieldsight-backend/internal/usecase/branding"
	"fieldsight-backend/internal/usecase/inspection"
	"fieldsight-backend/internal/usecase/payout"
	"fieldsight-backend/internal/usecase/provisioning"
	"fieldsight-backend/internal/usecase/submission"
)

func main() {
	_ = godotenv.Load()
	logg := logging.GetLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logg.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logg.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		logg.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logg.Fatal(err)
	}

	// repositories
	identityRepo := mysql.NewIdentityRepository(gdb)
	inspectionRepo := mysql.NewInspectionRepository(gdb)
	payoutRepo := mysql.NewPayoutRepository(gdb)
	submissionRepo := mysql.NewSubmissionRepository(gdb)
	brandingRepo := mysql.NewBrandingRepository(gdb)
	txManager := mysql.NewGormUoW(gdb)

	// usecases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	accountUC := account.NewUsecase(identityRepo, tokens)
	provisioningUC := provisioning.NewUsecase(identityRepo, txManager)
	inspectionUC := inspection.NewUsecase(inspectionRepo)
	payoutUC := payout.NewUsecase(payoutRepo)
	submissionUC := submission.NewUsecase(submissionRepo)
	brandingUC := branding.NewUsecase(brandingRepo)

	// seed the default admin; rerunning is a no-op ("already exists")
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := provisioningUC.Bootstrap(bootCtx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
		cancel()
		logg.Fatal(err)
	}
	cancel()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(appmw.Authenticate(tokens))

	gate := func(res rbac.Resource, act rbac.Action) echo.MiddlewareFunc {
		return appmw.RequireAccess(accountUC, rdb, res, act)
	}
	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:      httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(accountUC),
		Inspections: httpadp.NewInspectionHandler(inspectionUC),
		Payouts:     httpadp.NewPayoutHandler(payoutUC),
		Submissions: httpadp.NewSubmissionHandler(submissionUC),
		Users:       httpadp.NewUserHandler(provisioningUC),
		Branding:    httpadp.NewBrandingHandler(brandingUC),
	}, gate, idem)

	addr := ":" + cfg.AppPort
	logg.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		logg.Fatal(err)
	}
}
