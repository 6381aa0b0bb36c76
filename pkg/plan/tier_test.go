package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Eui18/recetkit/pkg/plan"
)

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		apiValue string
		want     plan.Tier
	}{
		{"Basico", plan.TierBasic},
		{"Premium", plan.TierPremium},
		{"", plan.TierNone},
		{"basico", plan.TierNone}, // backend values are case-sensitive
		{"Gold", plan.TierNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("value "+tt.apiValue, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, plan.ParseTier(tt.apiValue))
		})
	}
}

func TestTier_APIValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Basico", plan.TierBasic.APIValue())
	assert.Equal(t, "Premium", plan.TierPremium.APIValue())
	assert.Equal(t, "", plan.TierNone.APIValue())
}

func TestTier_APIValueRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tier := range []plan.Tier{plan.TierBasic, plan.TierPremium} {
		assert.Equal(t, tier, plan.ParseTier(tier.APIValue()))
	}
}

func TestTier_IsPaid(t *testing.T) {
	t.Parallel()

	assert.True(t, plan.TierPremium.IsPaid())
	assert.False(t, plan.TierBasic.IsPaid())
	assert.False(t, plan.TierNone.IsPaid())
}
