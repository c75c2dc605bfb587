package banners

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
)

type Api interface {
	Fetch(ctx context.Context, language api.Language) ([]*Banner, error)
	FetchColors(ctx context.Context) ([]*Color, error)
}
