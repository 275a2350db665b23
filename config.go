package ytmeta

import (
	"github.com/alanbriolat/ytmeta/fetch"
)

type Config struct {
	Fetcher          fetch.Fetcher
	ProviderRegistry *ProviderRegistry
	// CacheSize is how many parsed results of each kind are kept in memory, by URL. Zero disables the cache.
	CacheSize int
}

var DefaultConfig = Config{
	Fetcher:          fetch.Reusable(),
	ProviderRegistry: &DefaultProviderRegistry,
	CacheSize:        128,
}
