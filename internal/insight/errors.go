package insight

import "errors"

// Setup-phase failures. Only these abort an analysis request; every
// failure after authorization is absorbed by a fallback.
var (
	ErrUnauthenticated        = errors.New("authentication required")
	ErrPracticeRequired       = errors.New("practiceId is required")
	ErrForbidden              = errors.New("access to this practice is not allowed")
	ErrFeatureDisabled        = errors.New("AI analysis is disabled for this practice")
	ErrTemporarilyUnavailable = errors.New("service temporarily unavailable, please retry shortly")
)
