package portal

import (
	"time"

	"github.com/gym-network-toolkit/portal/config"
	"github.com/gym-network-toolkit/portal/internal/entity"
)

// tierFor looks up the entitlements for a membership type. The table comes
// from config so the billing-relevant values stay auditable.
func (uc *UseCase) tierFor(membershipType entity.MembershipType) (config.Tier, bool) {
	switch membershipType {
	case entity.MembershipBasic:
		return uc.tiers.Basic, true
	case entity.MembershipPremium:
		return uc.tiers.Premium, true
	case entity.MembershipVIP:
		return uc.tiers.VIP, true
	default:
		return config.Tier{}, false
	}
}

// accessDuration converts a tier's configured minutes to a duration.
func accessDuration(tier config.Tier) time.Duration {
	return time.Duration(tier.DurationMinutes) * time.Minute
}
