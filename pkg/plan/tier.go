package plan

// Tier represents a subscription tier.
type Tier string

const (
	TierNone    Tier = "none"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// Backend wire values for subscription tiers. The API speaks Spanish.
const (
	apiTierBasic   = "Basico"
	apiTierPremium = "Premium"
)

// ParseTier maps the backend's tier value to a Tier.
// Absent or unknown values map to TierNone rather than failing,
// since the backend omits the field for users without a subscription.
func ParseTier(apiValue string) Tier {
	switch apiValue {
	case apiTierBasic:
		return TierBasic
	case apiTierPremium:
		return TierPremium
	default:
		return TierNone
	}
}

// APIValue returns the backend's wire value for the tier.
// TierNone has no wire representation and returns an empty string.
func (t Tier) APIValue() string {
	switch t {
	case TierBasic:
		return apiTierBasic
	case TierPremium:
		return apiTierPremium
	default:
		return ""
	}
}

// IsPaid reports whether the tier requires payment through the hosted checkout.
func (t Tier) IsPaid() bool {
	return t == TierPremium
}

func (t Tier) String() string {
	return string(t)
}
