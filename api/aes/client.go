package aes

import (
	"context"
	"net/url"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type Client struct {
	Transport api.Transport
}

type fetchRequest struct {
	format KeyFormat
}

func (f fetchRequest) Retryable() bool {
	return true
}

// Keys rotate with every hotfix.
func (f fetchRequest) CacheTTL() time.Duration {
	return time.Minute
}

func (f fetchRequest) RequiresApiKey() bool {
	return false
}

func (f fetchRequest) Path() string {
	return "/v2/aes"
}

func (f fetchRequest) Values() (url.Values, error) {
	values := make(url.Values)
	if f.format != "" {
		values.Add("keyFormat", string(f.format))
	}
	return values, nil
}

// Fetch returns nil when upstream has no keys.
func (c *Client) Fetch(ctx context.Context, format KeyFormat) (*Aes, error) {
	data, err := c.Transport.Send(ctx, fetchRequest{format: format})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data)
}
