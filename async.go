package fortnite

import (
	"context"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/aes"
	"github.com/escrow-tf/fortnite/api/cosmetics"
	"github.com/escrow-tf/fortnite/api/gamemap"
	"github.com/escrow-tf/fortnite/api/news"
	"github.com/escrow-tf/fortnite/api/playlists"
	"github.com/escrow-tf/fortnite/api/shop"
	"github.com/escrow-tf/fortnite/api/stats"
)

// Future is the pending result of a call started with Async.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn in a new goroutine. A failed call never exposes a value.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)

		value, err := fn(ctx)
		if err != nil {
			f.err = err
			return
		}
		f.value = value
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call finishes or ctx is done. Giving up on ctx does
// not cancel the call itself; cancel the context passed to Async for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AsyncClient starts Client calls in the background.
type AsyncClient struct {
	client *Client
}

func (a *AsyncClient) FetchAllCosmetics(ctx context.Context, language api.Language) *Future[*cosmetics.AllCosmetics] {
	return Async(ctx, func(ctx context.Context) (*cosmetics.AllCosmetics, error) {
		return a.client.Cosmetics.FetchAll(ctx, language)
	})
}

func (a *AsyncClient) FetchNewCosmetics(ctx context.Context, language api.Language) *Future[*cosmetics.NewCosmetics] {
	return Async(ctx, func(ctx context.Context) (*cosmetics.NewCosmetics, error) {
		return a.client.Cosmetics.FetchNew(ctx, language)
	})
}

func (a *AsyncClient) FetchBr(ctx context.Context, id string, language api.Language) *Future[*cosmetics.Br] {
	return Async(ctx, func(ctx context.Context) (*cosmetics.Br, error) {
		return a.client.Cosmetics.FetchBrByID(ctx, id, language)
	})
}

func (a *AsyncClient) SearchBr(ctx context.Context, params cosmetics.SearchParams) *Future[[]*cosmetics.Br] {
	return Async(ctx, func(ctx context.Context) ([]*cosmetics.Br, error) {
		return a.client.Cosmetics.SearchBr(ctx, params)
	})
}

func (a *AsyncClient) FetchShop(ctx context.Context, language api.Language) *Future[*shop.Shop] {
	return Async(ctx, func(ctx context.Context) (*shop.Shop, error) {
		return a.client.Shop.Fetch(ctx, language)
	})
}

func (a *AsyncClient) FetchAes(ctx context.Context, format aes.KeyFormat) *Future[*aes.Aes] {
	return Async(ctx, func(ctx context.Context) (*aes.Aes, error) {
		return a.client.Aes.Fetch(ctx, format)
	})
}

func (a *AsyncClient) FetchNews(ctx context.Context, language api.Language) *Future[*news.News] {
	return Async(ctx, func(ctx context.Context) (*news.News, error) {
		return a.client.News.Fetch(ctx, language)
	})
}

func (a *AsyncClient) FetchStats(ctx context.Context, name string, options stats.Options) *Future[*stats.PlayerStats] {
	return Async(ctx, func(ctx context.Context) (*stats.PlayerStats, error) {
		return a.client.Stats.FetchByName(ctx, name, options)
	})
}

func (a *AsyncClient) FetchMap(ctx context.Context, language api.Language) *Future[*gamemap.Map] {
	return Async(ctx, func(ctx context.Context) (*gamemap.Map, error) {
		return a.client.Map.Fetch(ctx, language)
	})
}

func (a *AsyncClient) FetchPlaylists(ctx context.Context, language api.Language) *Future[[]*playlists.Playlist] {
	return Async(ctx, func(ctx context.Context) ([]*playlists.Playlist, error) {
		return a.client.Playlists.Fetch(ctx, language)
	})
}
