package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

//goland:noinspection GoUnusedConst
const JsonContentType = "application/json"

const (
	BaseURL          = "https://fortnite-api.com"
	DefaultUserAgent = "escrow-tf-fortnite/1.0"
	DefaultTimeout   = 30 * time.Second
	DefaultRetryMax  = 3
)

// Request describes a single GET against the API. Path is relative to the
// transport's base URL.
type Request interface {
	Retryable() bool
	// CacheTTL overrides the transport default when positive; negative disables caching.
	CacheTTL() time.Duration
	RequiresApiKey() bool
	Path() string
	Values() (url.Values, error)
}

// Transport issues requests and unwraps the response envelope. A nil
// RawMessage with a nil error means the API had no content for the request.
type Transport interface {
	AssetFetcher
	Send(ctx context.Context, request Request) (json.RawMessage, error)
}

type HttpTransport struct {
	baseURL     string
	apiKey      string
	userAgent   string
	cacheTTL    time.Duration
	limiter     *rate.Limiter
	client      *http.Client
	retryClient *retryablehttp.Client
}

type HttpTransportOptions struct {
	BaseURL   string
	ApiKey    string
	UserAgent string
	Timeout   time.Duration
	RetryMax  int
	// RateLimit is requests per second; zero leaves requests unthrottled.
	RateLimit float64
	RateBurst int
	// ResponseCache is optional; CacheTTL applies to requests that don't set their own.
	ResponseCache CacheAdaptor
	CacheTTL      time.Duration
}

func NewTransport(options HttpTransportOptions) *HttpTransport {
	baseURL := strings.TrimSuffix(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = BaseURL
	}

	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var roundTripper http.RoundTripper = cleanhttp.DefaultPooledTransport()
	if options.ResponseCache != nil {
		roundTripper = newCachingTransport(roundTripper, options.ResponseCache)
	}

	httpClient := &http.Client{
		Transport: roundTripper,
		Timeout:   timeout,
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.Logger = retryLogger{}
	retryClient.RetryMax = DefaultRetryMax
	if options.RetryMax > 0 {
		retryClient.RetryMax = options.RetryMax
	}

	var limiter *rate.Limiter
	if options.RateLimit > 0 {
		burst := options.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(options.RateLimit), burst)
	}

	return &HttpTransport{
		baseURL:     baseURL,
		apiKey:      options.ApiKey,
		userAgent:   userAgent,
		cacheTTL:    options.CacheTTL,
		limiter:     limiter,
		client:      httpClient,
		retryClient: retryClient,
	}
}

// Send issues request and returns the envelope's data member.
func (c *HttpTransport) Send(ctx context.Context, request Request) (json.RawMessage, error) {
	if request.RequiresApiKey() && c.apiKey == "" {
		return nil, eris.Wrapf(ErrMissingApiKey, "request to %s", request.Path())
	}

	requestValues, valuesErr := request.Values()
	if valuesErr != nil {
		return nil, valuesErr
	}

	requestUrl := c.baseURL + request.Path()
	if len(requestValues) > 0 {
		separator := "?"
		if strings.Contains(requestUrl, "?") {
			separator = "&"
		}
		requestUrl += separator + requestValues.Encode()
	}

	ttl := request.CacheTTL()
	if ttl == 0 {
		ttl = c.cacheTTL
	}
	if ttl > 0 {
		ctx = ContextWithCachingTtl(ctx, ttl)
	}

	httpResponse, requestId, err := c.do(ctx, requestUrl, request.Retryable())
	if err != nil {
		return nil, err
	}
	defer closeBody(httpResponse.Body)

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "couldn't read response from %s", request.Path())
	}

	log.Debug().
		Str("url", requestUrl).
		Str("request_id", requestId).
		Int("status", httpResponse.StatusCode).
		Bool("cached", httpResponse.Header.Get(cachedHeader) != "").
		Msg("fortnite api response")

	data, err := unwrapEnvelope(httpResponse.StatusCode, responseBody)
	if err != nil {
		return nil, eris.Wrapf(err, "request to %s", request.Path())
	}
	return data, nil
}

// Download fetches an asset URL verbatim; assets live outside the API envelope.
func (c *HttpTransport) Download(ctx context.Context, assetUrl string) ([]byte, error) {
	httpResponse, _, err := c.do(ctx, assetUrl, true)
	if err != nil {
		return nil, err
	}
	defer closeBody(httpResponse.Body)

	if err := ensureSuccessResponse(httpResponse.StatusCode); err != nil {
		return nil, eris.Wrapf(err, "download of %s", assetUrl)
	}

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "couldn't read asset %s", assetUrl)
	}
	return body, nil
}

func (c *HttpTransport) HttpClient() *http.Client {
	return c.client
}

func (c *HttpTransport) do(ctx context.Context, requestUrl string, retryable bool) (*http.Response, string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, "", eris.Wrap(err, "rate limiter")
		}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, "", eris.Wrapf(err, "couldn't build request for %s", requestUrl)
	}

	requestId := uuid.NewString()
	httpRequest.Header.Add("Accept", JsonContentType)
	httpRequest.Header.Add("User-Agent", c.userAgent)
	httpRequest.Header.Add("X-Request-Id", requestId)
	if c.apiKey != "" && strings.HasPrefix(requestUrl, c.baseURL) {
		httpRequest.Header.Add("Authorization", c.apiKey)
	}

	httpClient := c.client
	if retryable {
		httpClient = c.retryClient.StandardClient()
	}

	log.Debug().Str("url", requestUrl).Str("request_id", requestId).Bool("retryable", retryable).Msg("fortnite api request")

	httpResponse, err := httpClient.Do(httpRequest)
	if err != nil {
		return nil, requestId, eris.Wrapf(err, "request to fortnite-api failed")
	}
	return httpResponse, requestId, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing fortnite-api response body")
	}
}

// retryLogger routes retryablehttp's leveled logging through zerolog.
type retryLogger struct{}

func (retryLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Error().Fields(keysAndValues).Msg(msg)
}

func (retryLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Trace().Fields(keysAndValues).Msg(msg)
}

func (retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Warn().Fields(keysAndValues).Msg(msg)
}
