package creatorcode

import (
	"context"
	"net/url"

	"github.com/escrow-tf/fortnite/api"
)

type Client struct {
	Transport api.Transport
}

// Fetch returns nil when no creator uses name.
func (c *Client) Fetch(ctx context.Context, name string) (*CreatorCode, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/creatorcode",
		Params: url.Values{"name": {name}},
	})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data)
}
