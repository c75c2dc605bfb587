package news

import (
	"context"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

type GameMode string

//goland:noinspection GoUnusedConst
const (
	BrGameMode       GameMode = "br"
	StwGameMode      GameMode = "stw"
	CreativeGameMode GameMode = "creative"
)

const newsTTL = 5 * time.Minute

type Client struct {
	Transport api.Transport
}

func (c *Client) Fetch(ctx context.Context, language api.Language) (*News, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/news",
		Params: api.LanguageValues(language),
		TTL:    newsTTL,
	})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data, c.Transport)
}

// FetchGameMode returns nil when the mode currently has no news.
func (c *Client) FetchGameMode(ctx context.Context, mode GameMode, language api.Language) (*GameModeNews, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/news/" + string(mode),
		Params: api.LanguageValues(language),
		TTL:    newsTTL,
	})
	if err != nil || data == nil {
		return nil, err
	}
	return ParseGameMode(data, c.Transport)
}
