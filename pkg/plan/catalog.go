package plan

import (
	"context"
	"errors"
	"fmt"
)

// Catalog holds the ordered list of plans offered by the product.
// It is built once from a Source and is immutable afterwards.
type Catalog struct {
	ordered []Plan
	byID    map[string]Plan
	byTier  map[Tier]Plan
}

// NewCatalog loads and validates plans from the given source.
func NewCatalog(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("plan: Source is required")
	}

	plans, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := validate(plans); err != nil {
		return nil, err
	}

	c := &Catalog{
		ordered: plans,
		byID:    make(map[string]Plan, len(plans)),
		byTier:  make(map[Tier]Plan, len(plans)),
	}
	for _, p := range plans {
		c.byID[p.ID] = p
		c.byTier[p.Tier] = p
	}
	return c, nil
}

// Plans returns the plans in catalog order.
func (c *Catalog) Plans() []Plan {
	out := make([]Plan, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByID returns the plan with the given ID.
func (c *Catalog) ByID(id string) (Plan, error) {
	p, ok := c.byID[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

// ByTier returns the plan for the given tier.
func (c *Catalog) ByTier(tier Tier) (Plan, error) {
	p, ok := c.byTier[tier]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

// HasTier reports whether the catalog offers a plan for the tier.
func (c *Catalog) HasTier(tier Tier) bool {
	_, ok := c.byTier[tier]
	return ok
}

func validate(plans []Plan) error {
	if len(plans) == 0 {
		return errors.Join(ErrInvalidCatalog, errors.New("catalog has no plans"))
	}

	seenID := make(map[string]struct{}, len(plans))
	seenTier := make(map[Tier]struct{}, len(plans))
	for _, p := range plans {
		if p.ID == "" {
			return errors.Join(ErrInvalidCatalog, errors.New("plan with empty ID"))
		}
		if p.Tier == TierNone || p.Tier == "" {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("plan %s has no tier", p.ID))
		}
		if _, dup := seenID[p.ID]; dup {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("duplicate plan ID %s", p.ID))
		}
		if _, dup := seenTier[p.Tier]; dup {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("duplicate plan tier %s", p.Tier))
		}
		seenID[p.ID] = struct{}{}
		seenTier[p.Tier] = struct{}{}
	}
	return nil
}

// DefaultCatalog returns the product's built-in two-tier catalog.
// Prices and benefits mirror the published plan cards.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(context.Background(), NewInMemSource(
		Plan{
			ID:     "basic",
			Tier:   TierBasic,
			Name:   "Básico",
			Price:  Money{Amount: 0, Currency: "MXN"},
			Period: BillingPeriodNone,
			Benefits: []string{
				"Acceso a recetas básicas",
				"Guardar recetas favoritas",
				"Búsqueda por ingredientes",
			},
			Color:      "#3b82f6",
			LightColor: "#dbeafe",
		},
		Plan{
			ID:     "premium",
			Tier:   TierPremium,
			Name:   "Premium",
			Price:  Money{Amount: 9900, Currency: "MXN"},
			Period: BillingPeriodMonthly,
			Benefits: []string{
				"Todas las recetas sin límite",
				"Recetas exclusivas premium",
				"Planes de alimentación semanales",
				"Sin anuncios",
			},
			Color:      "#851736",
			LightColor: "#fce7f3",
		},
	))
	if err != nil {
		// The built-in catalog is a compile-time constant; a validation
		// failure here is a programming error.
		panic(err)
	}
	return c
}
