package plan

// Money represents a monetary amount in the smallest currency unit.
// For example, $4.99 USD would be Amount: 499, Currency: "USD".
type Money struct {
	Amount   int64  `yaml:"amount"`
	Currency string `yaml:"currency"` // ISO 4217 currency code
}

// IsFree reports whether the amount is zero.
func (m Money) IsFree() bool {
	return m.Amount == 0
}

// BillingPeriod represents the billing frequency for a plan.
type BillingPeriod string

const (
	BillingPeriodNone    BillingPeriod = "none" // free plans with no billing
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodAnnual  BillingPeriod = "annual"
)

// Plan describes a subscription plan as presented to the user.
// Plans are loaded once from a Source and are read-only afterwards;
// the core never mutates catalog data.
type Plan struct {
	ID         string        `yaml:"id"`
	Tier       Tier          `yaml:"tier"`
	Name       string        `yaml:"name"`
	Price      Money         `yaml:"price"`
	Period     BillingPeriod `yaml:"period"`
	Benefits   []string      `yaml:"benefits"`
	Color      string        `yaml:"color"`       // accent color for the plan card
	LightColor string        `yaml:"light_color"` // muted variant for benefit badges
}
