// Package data embeds the default service catalog so the binaries run
// without any external files.
package data

import _ "embed"

// CatalogJSON is the default catalog, used when CATALOG_PATH is not set.
//
//go:embed catalog.json
var CatalogJSON []byte
