package restapi

import (
	"time"

	"launchdash.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
