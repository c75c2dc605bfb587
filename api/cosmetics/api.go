package cosmetics

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
)

type Api interface {
	FetchAll(ctx context.Context, language api.Language) (*AllCosmetics, error)
	FetchNew(ctx context.Context, language api.Language) (*NewCosmetics, error)

	FetchBr(ctx context.Context, language api.Language) ([]*Br, error)
	FetchBrByID(ctx context.Context, id string, language api.Language) (*Br, error)
	FetchBrByIDs(ctx context.Context, ids []string, language api.Language) ([]*Br, error)
	FetchBrNew(ctx context.Context, language api.Language) (*NewBrCosmetics, error)
	SearchBr(ctx context.Context, params SearchParams) ([]*Br, error)
	SearchBrFirst(ctx context.Context, params SearchParams) (*Br, error)

	FetchTracks(ctx context.Context) ([]*Track, error)
	FetchInstruments(ctx context.Context, language api.Language) ([]*Instrument, error)
	FetchCars(ctx context.Context, language api.Language) ([]*Car, error)
	FetchLego(ctx context.Context) ([]*Lego, error)
	FetchLegoKits(ctx context.Context, language api.Language) ([]*LegoKit, error)
}
