// Package fortnite is a client for fortnite-api.com. Client bundles one
// endpoint client per API surface over a shared transport; every call blocks
// and takes a context, and Async runs the same calls in the background.
package fortnite

import (
	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/aes"
	"github.com/escrow-tf/fortnite/api/banners"
	"github.com/escrow-tf/fortnite/api/cosmetics"
	"github.com/escrow-tf/fortnite/api/creatorcode"
	"github.com/escrow-tf/fortnite/api/gamemap"
	"github.com/escrow-tf/fortnite/api/news"
	"github.com/escrow-tf/fortnite/api/playlists"
	"github.com/escrow-tf/fortnite/api/shop"
	"github.com/escrow-tf/fortnite/api/stats"
)

type Client struct {
	transport api.Transport

	Cosmetics   cosmetics.Api
	Shop        shop.Api
	Aes         aes.Api
	News        news.Api
	Stats       stats.Api
	Map         gamemap.Api
	Banners     banners.Api
	CreatorCode creatorcode.Api
	Playlists   playlists.Api
}

// NewClient builds a client over a new HttpTransport.
func NewClient(options api.HttpTransportOptions) *Client {
	return NewClientWithTransport(api.NewTransport(options))
}

// NewClientWithTransport builds a client over an existing transport, e.g. one
// shared with another client or a fake in tests.
func NewClientWithTransport(transport api.Transport) *Client {
	return &Client{
		transport:   transport,
		Cosmetics:   &cosmetics.Client{Transport: transport},
		Shop:        &shop.Client{Transport: transport},
		Aes:         &aes.Client{Transport: transport},
		News:        &news.Client{Transport: transport},
		Stats:       &stats.Client{Transport: transport},
		Map:         &gamemap.Client{Transport: transport},
		Banners:     &banners.Client{Transport: transport},
		CreatorCode: &creatorcode.Client{Transport: transport},
		Playlists:   &playlists.Client{Transport: transport},
	}
}

func (c *Client) Transport() api.Transport {
	return c.transport
}

// Async returns the asynchronous view of c. Both views share the transport
// and the endpoint clients.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}
