package tool

import (
	"golang.org/x/time/rate"
)

// NewUploadLimiter paces uploads. perSecond <= 0 disables pacing.
func NewUploadLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}
