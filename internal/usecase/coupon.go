package usecase

import "github.com/ishqme/popup-capture/internal/config"

// SelectCoupon maps a discount percentage to a coupon code. Binary by
// contract: the base rate gets the base code, every other value gets
// the upgraded code.
func SelectCoupon(percent int, policy config.CapturePolicy) string {
	if percent == policy.BasePercent {
		return policy.BaseCoupon
	}
	return policy.UpgradedCoupon
}
