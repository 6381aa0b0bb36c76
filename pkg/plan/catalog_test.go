package plan_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eui18/recetkit/pkg/plan"
)

func testPlans() []plan.Plan {
	return []plan.Plan{
		{ID: "basic", Tier: plan.TierBasic, Name: "Básico", Period: plan.BillingPeriodNone},
		{ID: "premium", Tier: plan.TierPremium, Name: "Premium", Period: plan.BillingPeriodMonthly,
			Price: plan.Money{Amount: 9900, Currency: "MXN"}},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads plans in order", func(t *testing.T) {
		t.Parallel()
		c, err := plan.NewCatalog(context.Background(), plan.NewInMemSource(testPlans()...))
		require.NoError(t, err)

		plans := c.Plans()
		require.Len(t, plans, 2)
		assert.Equal(t, "basic", plans[0].ID)
		assert.Equal(t, "premium", plans[1].ID)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewCatalog(context.Background(), plan.NewInMemSource())
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("rejects duplicate plan IDs", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewCatalog(context.Background(), plan.NewInMemSource(
			plan.Plan{ID: "basic", Tier: plan.TierBasic},
			plan.Plan{ID: "basic", Tier: plan.TierPremium},
		))
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("rejects duplicate tiers", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewCatalog(context.Background(), plan.NewInMemSource(
			plan.Plan{ID: "a", Tier: plan.TierBasic},
			plan.Plan{ID: "b", Tier: plan.TierBasic},
		))
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("rejects plan without tier", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewCatalog(context.Background(), plan.NewInMemSource(
			plan.Plan{ID: "mystery"},
		))
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("panics on nil source", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = plan.NewCatalog(context.Background(), nil)
		})
	})
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c, err := plan.NewCatalog(context.Background(), plan.NewInMemSource(testPlans()...))
	require.NoError(t, err)

	t.Run("by ID", func(t *testing.T) {
		t.Parallel()
		p, err := c.ByID("premium")
		require.NoError(t, err)
		assert.Equal(t, plan.TierPremium, p.Tier)

		_, err = c.ByID("gold")
		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})

	t.Run("by tier", func(t *testing.T) {
		t.Parallel()
		p, err := c.ByTier(plan.TierBasic)
		require.NoError(t, err)
		assert.Equal(t, "basic", p.ID)

		_, err = c.ByTier(plan.TierNone)
		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})

	t.Run("has tier", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.HasTier(plan.TierPremium))
		assert.False(t, c.HasTier(plan.TierNone))
	})
}

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	t.Run("parses catalog document", func(t *testing.T) {
		t.Parallel()
		doc := `
plans:
  - id: basic
    tier: basic
    name: Básico
    period: none
    benefits:
      - Acceso a recetas básicas
  - id: premium
    tier: premium
    name: Premium
    period: monthly
    price:
      amount: 9900
      currency: MXN
    color: "#851736"
`
		c, err := plan.NewCatalog(context.Background(), plan.NewYAMLSource(strings.NewReader(doc)))
		require.NoError(t, err)

		p, err := c.ByTier(plan.TierPremium)
		require.NoError(t, err)
		assert.Equal(t, int64(9900), p.Price.Amount)
		assert.Equal(t, "#851736", p.Color)
		assert.Equal(t, plan.BillingPeriodMonthly, p.Period)
	})

	t.Run("reports malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewCatalog(context.Background(), plan.NewYAMLSource(strings.NewReader("plans: [")))
		assert.ErrorIs(t, err, plan.ErrFailedToLoadPlans)
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := plan.DefaultCatalog()
	require.Len(t, c.Plans(), 2)
	assert.True(t, c.HasTier(plan.TierBasic))
	assert.True(t, c.HasTier(plan.TierPremium))

	premium, err := c.ByTier(plan.TierPremium)
	require.NoError(t, err)
	assert.False(t, premium.Price.IsFree())
	assert.NotEmpty(t, premium.Benefits)
}
