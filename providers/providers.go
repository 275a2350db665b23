// Package providers registers every provider with ytmeta.DefaultProviderRegistry when imported.
package providers

import (
	_ "github.com/alanbriolat/ytmeta/provider/search"
	_ "github.com/alanbriolat/ytmeta/provider/youtube"
)
