package plan

// Change classifies a requested plan transition.
type Change string

const (
	// NoChange means the selected tier equals the current tier.
	// Callers should suppress such selections before acting on them;
	// selecting the current plan never initiates a transition.
	NoChange Change = "no_change"
	// Upgrade is a move from the basic tier to the premium tier and
	// requires a payment through the hosted checkout.
	Upgrade Change = "upgrade"
	// Downgrade is a move from the premium tier back to the basic tier.
	Downgrade Change = "downgrade"
	// Lateral covers any other distinct pair. Unreachable with the
	// current two-tier catalog but reserved for future tiers.
	Lateral Change = "lateral"
)

// Classify determines what kind of transition moving from current to
// selected would be. Pure function of its inputs, no side effects.
func Classify(current, selected Tier) Change {
	switch {
	case current == selected:
		return NoChange
	case current == TierBasic && selected == TierPremium:
		return Upgrade
	case current == TierPremium && selected == TierBasic:
		return Downgrade
	default:
		return Lateral
	}
}
