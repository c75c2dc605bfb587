package aes

import "context"

type Api interface {
	Fetch(ctx context.Context, format KeyFormat) (*Aes, error)
}
