package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ishqme/popup-capture/internal/config"
	"github.com/ishqme/popup-capture/internal/entity"
	"github.com/ishqme/popup-capture/internal/infra/http/middleware"
	"github.com/ishqme/popup-capture/internal/infra/queue"
)

// CaptureLeadUseCase runs one popup submission end to end:
// validate -> normalize -> reconcile -> log -> notify -> publish.
//
// Error policy is fixed: a lookup/create/update failure aborts the
// request before any sink is touched; sheet, mail and queue are
// best-effort and never fail the capture. An unconfigured sink is nil
// here and gets skipped with a warning.
type CaptureLeadUseCase struct {
	Reconciler *CustomerReconciler
	Log        CaptureLog
	Mailer     CouponMailer
	Publisher  LeadPublisher
	Policy     config.CapturePolicy

	locks *emailLock
}

func NewCaptureLeadUseCase(
	platform CustomerPlatform,
	captureLog CaptureLog,
	mailer CouponMailer,
	publisher LeadPublisher,
	policy config.CapturePolicy,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Reconciler: NewCustomerReconciler(platform),
		Log:        captureLog,
		Mailer:     mailer,
		Publisher:  publisher,
		Policy:     policy,
		locks:      newEmailLock(),
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureInput) (*CaptureOutput, error) {
	validationErrors := ValidateCaptureInput(input, uc.Policy)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for i, e := range validationErrors {
			if i > 0 {
				errMsg += ", "
			}
			errMsg += e.Field + " (" + e.Message + ")"
		}
		return nil, &DomainError{Code: CodeValidation, Message: errMsg}
	}

	email := strings.TrimSpace(input.Email)
	phone := NormalizePhone(input.Phone, uc.Policy.DefaultCountryCode)

	lockKey := strings.ToLower(email)
	uc.locks.Lock(lockKey)
	result, err := uc.Reconciler.Reconcile(ctx, email, phone, input.Discount)
	uc.locks.Unlock(lockKey)
	if err != nil {
		return nil, err
	}

	entry := entity.NewCaptureEntry(email, phone, input.Discount)

	if uc.Log != nil {
		if err := uc.Log.Append(ctx, entry.Row()); err != nil {
			logrus.WithError(err).WithField("capture_id", entry.ID).Warn("Sheet append failed, capture continues")
			middleware.RecordIntegrationError("sheets")
		}
	} else {
		logrus.WithField("capture_id", entry.ID).Warn("Sheet log not configured, skipping append")
	}

	// New contact info earns the upgraded tier.
	percent := uc.Policy.BasePercent
	if result.PhoneWasAdded {
		percent = uc.Policy.UpgradedPercent
	}
	coupon := SelectCoupon(percent, uc.Policy)

	if uc.Mailer != nil {
		if err := uc.Mailer.SendCoupon(email, coupon, percent); err != nil {
			logrus.WithError(err).WithField("capture_id", entry.ID).Warn("Coupon email failed, capture continues")
			middleware.RecordIntegrationError("mail")
		} else {
			middleware.RecordCouponSent(coupon)
		}
	} else {
		logrus.WithField("capture_id", entry.ID).Warn("Mailer not configured, skipping coupon email")
	}

	if uc.Publisher != nil {
		payload := queue.LeadCapturedPayload{
			CaptureID:   entry.ID,
			Email:       email,
			Phone:       phone,
			Discount:    input.Discount,
			Coupon:      coupon,
			NewCustomer: result.Created,
			CapturedAt:  entry.Timestamp.Format(time.RFC3339),
		}
		if err := uc.Publisher.PublishLeadCaptured(ctx, payload); err != nil {
			logrus.WithError(err).WithField("capture_id", entry.ID).Warn("Lead event publish failed, capture continues")
			middleware.RecordIntegrationError("queue")
		}
	}

	return &CaptureOutput{
		Success:         true,
		Message:         captureMessage(result),
		ShopifyCustomer: result.Customer,
		Details: &CaptureDetails{
			CaptureID:   entry.ID,
			Coupon:      coupon,
			PhoneAdded:  result.PhoneWasAdded,
			NewCustomer: result.Created,
		},
	}, nil
}

func captureMessage(result *ReconcileResult) string {
	switch {
	case result.Created:
		return "Customer created. Coupon sent."
	case result.PhoneWasAdded:
		return "Existing customer updated with phone. Coupon sent."
	default:
		return "Email already registered. Coupon sent to existing customer."
	}
}
