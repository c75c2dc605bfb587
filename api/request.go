package api

import (
	"net/url"
	"time"
)

// GetRequest covers endpoints whose only inputs are a route and query values.
type GetRequest struct {
	Route         string
	Params        url.Values
	NoRetry       bool
	TTL           time.Duration
	Authenticated bool
}

func (g GetRequest) Retryable() bool {
	return !g.NoRetry
}

func (g GetRequest) CacheTTL() time.Duration {
	return g.TTL
}

func (g GetRequest) RequiresApiKey() bool {
	return g.Authenticated
}

func (g GetRequest) Path() string {
	return g.Route
}

func (g GetRequest) Values() (url.Values, error) {
	return g.Params, nil
}

// LanguageValues is the query every localised endpoint takes.
func LanguageValues(language Language) url.Values {
	values := make(url.Values)
	if language != "" {
		values.Add("language", string(language))
	}
	return values
}
