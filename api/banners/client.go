package banners

import (
	"context"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type Client struct {
	Transport api.Transport
}

func (c *Client) Fetch(ctx context.Context, language api.Language) ([]*Banner, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/banners",
		Params: api.LanguageValues(language),
		TTL:    time.Hour,
	})
	if err != nil {
		return nil, err
	}
	return ParseList(data, c.Transport)
}

func (c *Client) FetchColors(ctx context.Context) ([]*Color, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{Route: "/v2/banners/colors", TTL: time.Hour})
	if err != nil {
		return nil, err
	}
	return ParseColors(data)
}
