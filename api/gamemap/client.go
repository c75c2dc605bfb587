package gamemap

import (
	"context"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type Client struct {
	Transport api.Transport
}

func (c *Client) Fetch(ctx context.Context, language api.Language) (*Map, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/map",
		Params: api.LanguageValues(language),
		TTL:    time.Hour,
	})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data, c.Transport)
}
