// Package scaffold holds the embedded starter files written by `lehar init`.
package scaffold

import "embed"

// Files contains the starter metadata document and page template.
//
//go:embed templates
var Files embed.FS
