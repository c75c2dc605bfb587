package playlists

import (
	"context"
	"net/url"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

const playlistsTTL = 30 * time.Minute

type Client struct {
	Transport api.Transport
}

func (c *Client) Fetch(ctx context.Context, language api.Language) ([]*Playlist, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/playlists",
		Params: api.LanguageValues(language),
		TTL:    playlistsTTL,
	})
	if err != nil {
		return nil, err
	}
	return ParseList(data, c.Transport)
}

func (c *Client) FetchByID(ctx context.Context, id string, language api.Language) (*Playlist, error) {
	data, err := c.Transport.Send(ctx, api.GetRequest{
		Route:  "/v2/playlists/" + url.PathEscape(id),
		Params: api.LanguageValues(language),
		TTL:    playlistsTTL,
	})
	if err != nil || data == nil {
		return nil, err
	}
	return Parse(data, c.Transport)
}
