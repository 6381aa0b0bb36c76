// Package plan defines the subscription plan catalog and the pure
// classification of plan transitions.
//
// The catalog is loaded once from a Source (in-memory or YAML) and is
// read-only afterwards. Classify determines whether moving between two
// tiers is an upgrade requiring payment, a downgrade, or neither:
//
//	catalog := plan.DefaultCatalog()
//	switch plan.Classify(plan.TierBasic, plan.TierPremium) {
//	case plan.Upgrade:
//		// start a hosted checkout
//	case plan.Downgrade:
//		// revert to the free tier
//	}
//
// Tier values map to the backend's wire representation through ParseTier
// and Tier.APIValue; unknown or absent backend values map to TierNone.
package plan
