package shopify

import "github.com/ishqme/popup-capture/internal/entity"

type CreateCustomerInput struct {
	Email            string
	Phone            string
	Tags             string
	AcceptsMarketing bool
}

// --- Payloads: what the client sends to Shopify (internal) ---

type customerPayload struct {
	ID               int64  `json:"id,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Tags             string `json:"tags,omitempty"`
	AcceptsMarketing bool   `json:"accepts_marketing,omitempty"`
}

type customerEnvelope struct {
	Customer customerPayload `json:"customer"`
}

// --- Responses: what Shopify returns ---

type customerResponse struct {
	Customer entity.Customer `json:"customer"`
}

type searchResponse struct {
	Customers []entity.Customer `json:"customers"`
}
