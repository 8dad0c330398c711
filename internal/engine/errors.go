package engine

import "errors"

var (
	// ErrStalePlan indicates the world changed since a plan was computed.
	ErrStalePlan = errors.New("plan is stale")

	// ErrPlanNotFound indicates no plan document exists at the given path.
	ErrPlanNotFound = errors.New("plan not found")
)
