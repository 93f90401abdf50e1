package usecase

import "github.com/ishqme/popup-capture/internal/entity"

type CaptureInput struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Discount string `json:"discount"`
}

type CaptureOutput struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	ShopifyCustomer *entity.Customer `json:"shopifyCustomer,omitempty"`
	Details         *CaptureDetails  `json:"details,omitempty"`
}

type CaptureDetails struct {
	CaptureID   string `json:"capture_id"`
	Coupon      string `json:"coupon"`
	PhoneAdded  bool   `json:"phone_added"`
	NewCustomer bool   `json:"new_customer"`
}
