// Package cache holds api.CacheAdaptor implementations for the transport's
// response cache.
package cache

import "github.com/rotisserie/eris"

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = eris.New("cache miss")
