package entity

import "errors"

// Domain errors
var (
	// Interview errors
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrInterviewCompleted = errors.New("interview is already completed")
	ErrInterviewConflict  = errors.New("interview was modified concurrently")

	// Job errors
	ErrJobNotFound = errors.New("job not found")

	// Resume errors
	ErrResumeNotFound    = errors.New("resume not found")
	ErrNoOptimizedResume = errors.New("optimized resume not available")
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// AI gateway errors
	ErrGeneration = errors.New("ai generation failed")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
