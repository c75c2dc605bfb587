package api

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// cachedHeader marks responses replayed from the cache.
const cachedHeader = "X-Fortnite-Cache"

// CacheAdaptor stores serialized responses. Get reports a miss with any
// non-nil error.
type CacheAdaptor interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type cacheTTLKey struct{}

// ContextWithCachingTtl asks the response cache to keep the response of
// requests made with ctx for ttl.
func ContextWithCachingTtl(ctx context.Context, ttl time.Duration) context.Context {
	return context.WithValue(ctx, cacheTTLKey{}, ttl)
}

func cachingTtl(ctx context.Context) time.Duration {
	ttl, _ := ctx.Value(cacheTTLKey{}).(time.Duration)
	return ttl
}

// responseCache replays GET responses keyed by method and normalised URL.
type responseCache struct {
	next    http.RoundTripper
	adaptor CacheAdaptor
}

func newCachingTransport(next http.RoundTripper, adaptor CacheAdaptor) http.RoundTripper {
	return &responseCache{next: next, adaptor: adaptor}
}

// responseCacheKey ignores query order so equivalent requests share an entry.
func responseCacheKey(request *http.Request) string {
	u := *request.URL
	u.RawQuery = u.Query().Encode()
	u.Fragment = ""
	return request.Method + " " + u.String()
}

// cacheable reports whether upstream's answer is stable enough to replay.
// 404 is fortnite-api's "no content" and is kept like a 200.
func cacheable(statusCode int) bool {
	return statusCode == http.StatusNotFound || (statusCode >= 200 && statusCode < 300)
}

func (c *responseCache) RoundTrip(request *http.Request) (*http.Response, error) {
	ctx := request.Context()
	ttl := cachingTtl(ctx)
	if request.Method != http.MethodGet || ttl <= 0 {
		return c.next.RoundTrip(request)
	}

	key := responseCacheKey(request)
	if response, ok := c.lookup(ctx, key, request); ok {
		return response, nil
	}

	response, err := c.next.RoundTrip(request)
	if err != nil || !cacheable(response.StatusCode) {
		return response, err
	}

	c.store(ctx, key, response, ttl)
	return response, nil
}

func (c *responseCache) lookup(ctx context.Context, key string, request *http.Request) (*http.Response, bool) {
	serialized, err := c.adaptor.Get(ctx, key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("response cache miss")
		return nil, false
	}

	response, err := http.ReadResponse(bufio.NewReader(strings.NewReader(serialized)), request)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached response")
		return nil, false
	}
	response.Header.Set(cachedHeader, "hit")
	return response, true
}

// store leaves response readable; DumpResponse buffers and restores the body.
func (c *responseCache) store(ctx context.Context, key string, response *http.Response, ttl time.Duration) {
	serialized, err := httputil.DumpResponse(response, true)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("couldn't serialize fortnite-api response")
		return
	}
	if err := c.adaptor.Set(ctx, key, string(serialized), ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("couldn't cache fortnite-api response")
	}
}
