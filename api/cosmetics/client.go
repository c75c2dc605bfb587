package cosmetics

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

type Client struct {
	Transport api.Transport
}

func (c *Client) FetchAll(ctx context.Context, language api.Language) (*AllCosmetics, error) {
	data, err := c.get(ctx, "/v2/cosmetics", language)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseAllCosmetics(data, c.Transport)
}

func (c *Client) FetchNew(ctx context.Context, language api.Language) (*NewCosmetics, error) {
	data, err := c.get(ctx, "/v2/cosmetics/new", language)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseNewCosmetics(data, c.Transport)
}

func (c *Client) FetchBr(ctx context.Context, language api.Language) ([]*Br, error) {
	data, err := c.get(ctx, "/v2/cosmetics/br", language)
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildBr)
}

func (c *Client) FetchBrByID(ctx context.Context, id string, language api.Language) (*Br, error) {
	data, err := c.get(ctx, "/v2/cosmetics/br/"+url.PathEscape(id), language)
	if err != nil || data == nil {
		return nil, err
	}
	return c.parseBr(data)
}

// FetchBrByIDs returns no cosmetics, without a request, when ids is empty.
func (c *Client) FetchBrByIDs(ctx context.Context, ids []string, language api.Language) ([]*Br, error) {
	if len(ids) == 0 {
		return []*Br{}, nil
	}

	data, err := c.Transport.Send(ctx, idsRequest{ids: ids, language: language})
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildBr)
}

func (c *Client) FetchBrNew(ctx context.Context, language api.Language) (*NewBrCosmetics, error) {
	data, err := c.get(ctx, "/v2/cosmetics/br/new", language)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseNewBrCosmetics(data, c.Transport)
}

func (c *Client) SearchBr(ctx context.Context, params SearchParams) ([]*Br, error) {
	data, err := c.Transport.Send(ctx, searchRequest{route: "/v2/cosmetics/br/search/all", params: params})
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildBr)
}

// SearchBrFirst returns nil when nothing matches.
func (c *Client) SearchBrFirst(ctx context.Context, params SearchParams) (*Br, error) {
	data, err := c.Transport.Send(ctx, searchRequest{route: "/v2/cosmetics/br/search", params: params})
	if err != nil || data == nil {
		return nil, err
	}
	return c.parseBr(data)
}

func (c *Client) FetchTracks(ctx context.Context) ([]*Track, error) {
	data, err := c.get(ctx, "/v2/cosmetics/tracks", "")
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildTrack)
}

func (c *Client) FetchInstruments(ctx context.Context, language api.Language) ([]*Instrument, error) {
	data, err := c.get(ctx, "/v2/cosmetics/instruments", language)
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildInstrument)
}

func (c *Client) FetchCars(ctx context.Context, language api.Language) ([]*Car, error) {
	data, err := c.get(ctx, "/v2/cosmetics/cars", language)
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildCar)
}

func (c *Client) FetchLego(ctx context.Context) ([]*Lego, error) {
	data, err := c.get(ctx, "/v2/cosmetics/lego", "")
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildLego)
}

func (c *Client) FetchLegoKits(ctx context.Context, language api.Language) ([]*LegoKit, error) {
	data, err := c.get(ctx, "/v2/cosmetics/lego/kits", language)
	if err != nil {
		return nil, err
	}
	return parseList(data, c.Transport, buildLegoKit)
}

func (c *Client) get(ctx context.Context, route string, language api.Language) (json.RawMessage, error) {
	return c.Transport.Send(ctx, api.GetRequest{Route: route, Params: api.LanguageValues(language)})
}

func (c *Client) parseBr(data json.RawMessage) (*Br, error) {
	object, err := payload.ParseObject(data)
	if err != nil {
		return nil, err
	}
	return ParseBr(object, c.Transport)
}
