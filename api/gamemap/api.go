package gamemap

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
)

type Api interface {
	Fetch(ctx context.Context, language api.Language) (*Map, error)
}
