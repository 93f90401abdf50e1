package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a transient copy of the Shopify customer record. It lives
// for a single request and is never cached across requests; Shopify
// owns the canonical state.
type Customer struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Tags             string `json:"tags,omitempty"`
	AcceptsMarketing bool   `json:"accepts_marketing"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// HasPhone reports whether the record already carries a phone number.
func (c *Customer) HasPhone() bool {
	return c != nil && c.Phone != ""
}

// CaptureEntry is one popup submission as it goes to the spreadsheet
// log: write-once, append-only, never read back.
type CaptureEntry struct {
	ID        string
	Email     string
	Phone     string
	Discount  string
	Timestamp time.Time
}

func NewCaptureEntry(email, phone, discount string) *CaptureEntry {
	return &CaptureEntry{
		ID:        uuid.New().String(),
		Email:     email,
		Phone:     phone,
		Discount:  discount,
		Timestamp: time.Now().UTC(),
	}
}

// Row flattens the entry into the column order the sheet expects.
func (e *CaptureEntry) Row() []string {
	return []string{e.Email, e.Phone, e.Discount, e.Timestamp.Format(time.RFC3339)}
}
