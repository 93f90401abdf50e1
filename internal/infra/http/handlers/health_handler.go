package handlers

import (
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/ishqme/popup-capture/internal/config"
)

type HealthHandler struct {
	Cfg       *config.Config
	RabbitMQ  *amqp091.Connection
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config, rabbitMQ *amqp091.Connection) *HealthHandler {
	return &HealthHandler{
		Cfg:       cfg,
		RabbitMQ:  rabbitMQ,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Shopify is mandatory; config.Load already refused to start
	// without it.
	deps["shopify"] = "configured"

	if h.Cfg.SheetsConfigured() {
		deps["sheets"] = "configured"
	} else {
		deps["sheets"] = "not configured"
	}

	if h.Cfg.MailConfigured() {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
