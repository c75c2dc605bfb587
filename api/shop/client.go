package shop

import (
	"context"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type Client struct {
	Transport api.Transport
}

// Fetch returns nil when the shop is unavailable, which happens briefly at rotation.
func (c *Client) Fetch(ctx context.Context, language api.Language) (*Shop, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/shop",
		Params: api.LanguageValues(language),
		TTL:    time.Minute,
	})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data, c.Transport)
}
