package stats

import (
	"context"
	"net/url"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type AccountType string

//goland:noinspection GoUnusedConst
const (
	EpicAccountType AccountType = "epic"
	PsnAccountType  AccountType = "psn"
	XblAccountType  AccountType = "xbl"
)

type TimeWindow string

//goland:noinspection GoUnusedConst
const (
	SeasonTimeWindow   TimeWindow = "season"
	LifetimeTimeWindow TimeWindow = "lifetime"
)

// ImageKind selects which input the rendered stats image covers.
type ImageKind string

//goland:noinspection GoUnusedConst
const (
	AllImageKind           ImageKind = "all"
	KeyboardMouseImageKind ImageKind = "keyboardMouse"
	GamepadImageKind       ImageKind = "gamepad"
	TouchImageKind         ImageKind = "touch"
	NoImageKind            ImageKind = "none"
)

// Options are sent only when set.
type Options struct {
	AccountType AccountType
	TimeWindow  TimeWindow
	Image       ImageKind
}

func (o Options) values() url.Values {
	values := make(url.Values)
	if o.AccountType != "" {
		values.Add("accountType", string(o.AccountType))
	}
	if o.TimeWindow != "" {
		values.Add("timeWindow", string(o.TimeWindow))
	}
	if o.Image != "" {
		values.Add("image", string(o.Image))
	}
	return values
}

type Client struct {
	Transport api.Transport
}

type statsRequest struct {
	route  string
	values url.Values
}

func (s statsRequest) Retryable() bool {
	return true
}

func (s statsRequest) CacheTTL() time.Duration {
	return 0
}

func (s statsRequest) RequiresApiKey() bool {
	return true
}

func (s statsRequest) Path() string {
	return s.route
}

func (s statsRequest) Values() (url.Values, error) {
	return s.values, nil
}

// FetchByName returns nil when no account has that name.
func (c *Client) FetchByName(ctx context.Context, name string, options Options) (*PlayerStats, error) {
	values := options.values()
	values.Add("name", name)
	return c.fetch(ctx, statsRequest{route: "/v2/stats/br/v2", values: values})
}

func (c *Client) FetchByAccountID(ctx context.Context, accountID string, options Options) (*PlayerStats, error) {
	return c.fetch(ctx, statsRequest{
		route:  "/v2/stats/br/v2/" + url.PathEscape(accountID),
		values: options.values(),
	})
}

func (c *Client) fetch(ctx context.Context, request statsRequest) (*PlayerStats, error) {
	data, err := c.Transport.Send(ctx, request)
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data, c.Transport)
}
