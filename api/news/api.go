package news

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
)

type Api interface {
	Fetch(ctx context.Context, language api.Language) (*News, error)
	FetchGameMode(ctx context.Context, mode GameMode, language api.Language) (*GameModeNews, error)
}
