package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/ishqme/popup-capture/internal/config"
	"github.com/ishqme/popup-capture/internal/infra/http/handlers"
	"github.com/ishqme/popup-capture/internal/infra/http/middleware"
	"github.com/ishqme/popup-capture/internal/infra/integration/sheets"
	"github.com/ishqme/popup-capture/internal/infra/integration/shopify"
	"github.com/ishqme/popup-capture/internal/infra/mail"
	"github.com/ishqme/popup-capture/internal/infra/queue"
	"github.com/ishqme/popup-capture/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// 1. Commerce platform (mandatory)
	platform := shopify.NewClient(cfg.ShopifyAccessToken, cfg.ShopifyStoreURL)

	// 2. Sinks — each one missing disables that feature only
	var captureLog usecase.CaptureLog
	if cfg.SheetsConfigured() {
		captureLog = sheets.NewClient(cfg.SheetsToken, cfg.SpreadsheetID, cfg.SheetRange)
	} else {
		logrus.Warn("⚠️ Sheets sink not configured, captures will not be logged")
	}

	var mailer usecase.CouponMailer
	if cfg.MailConfigured() {
		mailer = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	} else {
		logrus.Warn("⚠️ Mail not configured, coupon emails disabled")
	}

	var publisher usecase.LeadPublisher
	var rabbitConn *amqp.Connection
	if cfg.QueueConfigured() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.QueueUser, cfg.QueuePass, cfg.QueueHost, cfg.QueuePort)
		if err != nil {
			logrus.WithError(err).Warn("⚠️ RabbitMQ unavailable, lead events disabled")
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			publisher = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
			rabbitConn = rabbitMQ.Conn
		}
	}

	// 3. UseCase
	captureUC := usecase.NewCaptureLeadUseCase(platform, captureLog, mailer, publisher, cfg.Capture)

	// 4. Handlers
	captureHandler := handlers.NewCaptureHandler(captureUC)
	healthHandler := handlers.NewHealthHandler(cfg, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/popup-capture", captureHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.HTTPPort
	logrus.Infof("🔥 Popup capture adapter running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("HTTP server stopped")
	}
}
