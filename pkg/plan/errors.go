package plan

import "errors"

var (
	ErrPlanNotFound      = errors.New("plan not found in catalog")
	ErrInvalidCatalog    = errors.New("invalid plan catalog configuration")
	ErrFailedToLoadPlans = errors.New("failed to load plan catalog")
)
