package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ishqme/popup-capture/internal/entity"
	"github.com/ishqme/popup-capture/internal/infra/integration/shopify"
	"github.com/ishqme/popup-capture/internal/infra/queue"
)

// MockCustomerPlatform
type MockCustomerPlatform struct {
	mock.Mock
}

func (m *MockCustomerPlatform) SearchByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerPlatform) Create(ctx context.Context, input shopify.CreateCustomerInput) (*entity.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerPlatform) UpdatePhone(ctx context.Context, id int64, phone, tags string) (*entity.Customer, error) {
	args := m.Called(ctx, id, phone, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

// MockCaptureLog
type MockCaptureLog struct {
	mock.Mock
}

func (m *MockCaptureLog) Append(ctx context.Context, row []string) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// MockCouponMailer
type MockCouponMailer struct {
	mock.Mock
}

func (m *MockCouponMailer) SendCoupon(to, code string, percent int) error {
	args := m.Called(to, code, percent)
	return args.Error(0)
}

// MockLeadPublisher
type MockLeadPublisher struct {
	mock.Mock
}

func (m *MockLeadPublisher) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
