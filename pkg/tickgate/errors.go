package tickgate

import "errors"

var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTarget is returned when the target tick duration is not positive
	ErrInvalidTarget = errors.New("target tick duration must be positive")

	// ErrInvalidStep is returned when a tuning step is not positive
	ErrInvalidStep = errors.New("tuning step must be positive")

	// ErrInvalidInterval is returned when the sweep cadence is not positive
	ErrInvalidInterval = errors.New("sweep interval must be positive")
)
