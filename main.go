package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/controllers"
	"github.com/Govind-619/BooksCourier/middleware"
	"github.com/Govind-619/BooksCourier/routes"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := utils.InitLogger("logs"); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Failed to initialize database: %v", err)
		log.Fatal("Failed to initialize database:", err)
	}
	utils.LogInfo("Connected to database %s", cfg.DBName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := utils.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
	if err != nil {
		utils.LogError("Failed to initialize token verifier: %v", err)
		log.Fatal("Failed to initialize token verifier:", err)
	}
	middleware.SetTokenVerifier(verifier)

	var guard utils.ConfirmGuard = utils.NoopConfirmGuard{}
	if cfg.RedisAddr != "" {
		rdb, err := utils.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			utils.LogError("Redis unavailable, payment confirmations run unguarded: %v", err)
		} else {
			defer rdb.Close()
			guard = utils.NewRedisConfirmGuard(rdb, utils.ConfirmGuardTTL)
			utils.LogInfo("Payment confirm guard using redis at %s", cfg.RedisAddr)
		}
	}

	controllers.InitPayments(controllers.PaymentSettings{
		Gateway: utils.NewRazorpayGateway(cfg.RazorpayKey, cfg.RazorpaySecret),
		Guard:   guard,
		Mailer: utils.NewMailer(utils.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		Currency:   cfg.PaymentCurrency,
		SiteDomain: cfg.SiteDomain,
	})

	router := routes.SetupRouter(cfg.SessionSecret, cfg.Env == "production")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	<-ctx.Done()
	utils.LogInfo("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Graceful shutdown failed: %v", err)
	}
}
