package usecase

import (
	"context"

	"github.com/ishqme/popup-capture/internal/entity"
	"github.com/ishqme/popup-capture/internal/infra/integration/shopify"
)

type ReconcileResult struct {
	Customer      *entity.Customer
	PhoneWasAdded bool
	Created       bool
}

// CustomerReconciler matches an incoming contact to the platform's
// customer database and decides whether to create, update, or leave it
// alone. At most one create and at most one update per invocation.
type CustomerReconciler struct {
	Platform CustomerPlatform
}

func NewCustomerReconciler(platform CustomerPlatform) *CustomerReconciler {
	return &CustomerReconciler{Platform: platform}
}

func (r *CustomerReconciler) Reconcile(ctx context.Context, email, normalizedPhone, tag string) (*ReconcileResult, error) {
	existing, err := r.Platform.SearchByEmail(ctx, email)
	if err != nil {
		// A failed search is not "not found". Creating here could
		// duplicate the customer, so the request aborts instead.
		return nil, &TechnicalError{
			Code:    CodeLookupFailed,
			Message: "customer search failed: " + err.Error(),
		}
	}

	if existing != nil {
		if normalizedPhone == "" || existing.Phone == normalizedPhone {
			return &ReconcileResult{Customer: existing}, nil
		}

		updated, err := r.Platform.UpdatePhone(ctx, existing.ID, normalizedPhone, tag)
		if err != nil {
			return nil, &TechnicalError{
				Code:    CodeWriteFailed,
				Message: "customer update failed: " + err.Error(),
			}
		}
		return &ReconcileResult{Customer: updated, PhoneWasAdded: true}, nil
	}

	created, err := r.Platform.Create(ctx, shopify.CreateCustomerInput{
		Email:            email,
		Phone:            normalizedPhone,
		Tags:             tag,
		AcceptsMarketing: true,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeWriteFailed,
			Message: "customer create failed: " + err.Error(),
		}
	}

	return &ReconcileResult{
		Customer:      created,
		PhoneWasAdded: normalizedPhone != "",
		Created:       true,
	}, nil
}
