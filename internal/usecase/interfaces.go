package usecase

import (
	"context"

	"github.com/ishqme/popup-capture/internal/entity"
	"github.com/ishqme/popup-capture/internal/infra/integration/shopify"
	"github.com/ishqme/popup-capture/internal/infra/queue"
)

// CustomerPlatform is the commerce side: search/create/update against
// the store's customer database.
type CustomerPlatform interface {
	// SearchByEmail returns (nil, nil) when no customer matches.
	SearchByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Create(ctx context.Context, input shopify.CreateCustomerInput) (*entity.Customer, error)
	UpdatePhone(ctx context.Context, id int64, phone, tags string) (*entity.Customer, error)
}

// CaptureLog is the append-only spreadsheet sink.
type CaptureLog interface {
	Append(ctx context.Context, row []string) error
}

type CouponMailer interface {
	SendCoupon(to, code string, percent int) error
}

type LeadPublisher interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
