package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort string

	// Shopify admin API
	ShopifyStoreURL    string
	ShopifyAccessToken string

	// Google Sheets log sink
	SpreadsheetID string
	SheetsToken   string
	SheetRange    string

	// SMTP (coupon emails)
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// RabbitMQ (lead.captured events)
	QueueUser string
	QueuePass string
	QueueHost string
	QueuePort string

	Capture CapturePolicy
}

// CapturePolicy controls which optional fields the endpoint rejects
// when missing, plus the coupon tiers handed out.
type CapturePolicy struct {
	RequirePhone       bool
	RequireDiscount    bool
	DefaultCountryCode string
	BasePercent        int
	UpgradedPercent    int
	BaseCoupon         string
	UpgradedCoupon     string
}

func Load() (*Config, error) {
	token := os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if token == "" {
		return nil, errors.New("SHOPIFY_ACCESS_TOKEN environment variable is required")
	}
	storeURL := os.Getenv("SHOPIFY_STORE_URL")
	if storeURL == "" {
		return nil, errors.New("SHOPIFY_STORE_URL environment variable is required")
	}

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "3000"),
		ShopifyStoreURL:    storeURL,
		ShopifyAccessToken: token,
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetsToken:        os.Getenv("SHEETS_ACCESS_TOKEN"),
		SheetRange:         getEnv("SHEET_RANGE", "Sheet1!A:Z"),
		MailHost:           getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:           getIntEnv("MAIL_PORT", 587),
		MailUser:           os.Getenv("MAIL_USER"),
		MailPass:           os.Getenv("MAIL_PASS"),
		MailFrom:           getEnv("MAIL_FROM", "IshqMe"),
		QueueUser:          os.Getenv("RABBITMQ_USER"),
		QueuePass:          os.Getenv("RABBITMQ_PASS"),
		QueueHost:          os.Getenv("RABBITMQ_HOST"),
		QueuePort:          getEnv("RABBITMQ_PORT", "5672"),
		Capture:            loadCapturePolicy(),
	}, nil
}

func loadCapturePolicy() CapturePolicy {
	return CapturePolicy{
		RequirePhone:       getBoolEnv("CAPTURE_REQUIRE_PHONE", false),
		RequireDiscount:    getBoolEnv("CAPTURE_REQUIRE_DISCOUNT", false),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "91"),
		BasePercent:        getIntEnv("COUPON_BASE_PERCENT", 5),
		UpgradedPercent:    getIntEnv("COUPON_UPGRADED_PERCENT", 10),
		BaseCoupon:         getEnv("COUPON_BASE_CODE", "ISHQME5"),
		UpgradedCoupon:     getEnv("COUPON_UPGRADED_CODE", "ISHQME10"),
	}
}

// SheetsConfigured reports whether the log sink can be constructed.
func (c *Config) SheetsConfigured() bool {
	return c.SpreadsheetID != "" && c.SheetsToken != ""
}

func (c *Config) MailConfigured() bool {
	return c.MailUser != "" && c.MailPass != ""
}

func (c *Config) QueueConfigured() bool {
	return c.QueueHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
