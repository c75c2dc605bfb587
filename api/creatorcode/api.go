package creatorcode

import "context"

type Api interface {
	Fetch(ctx context.Context, name string) (*CreatorCode, error)
}
