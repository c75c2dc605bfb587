package api

import (
	"context"
	"path"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

var ErrNoAssetFetcher = eris.New("asset has no fetcher attached")

// AssetFetcher downloads asset bytes. HttpTransport implements it.
type AssetFetcher interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Asset is an image reference returned by the API. It carries the fetcher it
// was parsed with so it can be downloaded later.
type Asset struct {
	URL     string
	fetcher AssetFetcher
}

func NewAsset(fetcher AssetFetcher, url string) Asset {
	return Asset{URL: url, fetcher: fetcher}
}

// OptionalAsset returns nil for a nil or empty url.
func OptionalAsset(fetcher AssetFetcher, url *string) *Asset {
	if url == nil || *url == "" {
		return nil
	}

	asset := NewAsset(fetcher, *url)
	return &asset
}

func (a Asset) String() string {
	return a.URL
}

func (a Asset) Read(ctx context.Context) ([]byte, error) {
	if a.fetcher == nil {
		return nil, eris.Wrapf(ErrNoAssetFetcher, "%s", a.URL)
	}
	return a.fetcher.Download(ctx, a.URL)
}

// Resize returns the same asset at another size. Sizes are powers of two from 8
// to 2048; the API serves them at "<name>_<size><ext>".
func (a Asset) Resize(size int) (Asset, error) {
	if size < 8 || size > 2048 || size&(size-1) != 0 {
		return Asset{}, eris.Errorf("size must be a power of two between 8 and 2048, got %d", size)
	}

	ext := path.Ext(a.URL)
	base := strings.TrimSuffix(a.URL, ext)
	return NewAsset(a.fetcher, base+"_"+strconv.Itoa(size)+ext), nil
}
