package stats

import "context"

type Api interface {
	FetchByName(ctx context.Context, name string, options Options) (*PlayerStats, error)
	FetchByAccountID(ctx context.Context, accountID string, options Options) (*PlayerStats, error)
}
