package main

import (
	"net/http"
	"os"
	"time"

	"vaultlist/api/handler"
	"vaultlist/api/routes"
	"vaultlist/config"
	"vaultlist/internal/entity"
	"vaultlist/internal/repository"
	"vaultlist/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := db.AutoMigrate(&entity.EmailSignup{}, &entity.SignupEvent{}); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		logger.Fatal("RESEND_API_KEY is required")
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "VaultAI <onboarding@resend.dev>"
	}

	emailSender := service.NewResendEmailSender(apiKey, from, os.Getenv("VERIFY_BASE_URL"))

	signupRepo := repository.NewSignupRepository(db)
	eventRepo := repository.NewSignupEventRepository(db)

	waitlistService := service.NewWaitlistService(
		signupRepo,
		eventRepo,
		emailSender,
		service.RealClock{},
		logger,
		service.WaitlistConfig{
			VerificationTTL: 24 * time.Hour,
			TokenBytes:      32,
		},
	)

	waitlistHandler := handler.NewWaitlistHandler(waitlistService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.NewRouter(app, waitlistHandler)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
