package playlists

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
)

type Api interface {
	Fetch(ctx context.Context, language api.Language) ([]*Playlist, error)
	FetchByID(ctx context.Context, id string, language api.Language) (*Playlist, error)
}
