// Package embedded compiles the default template catalog data into the
// binary so lists can be generated with no files on disk.
package embedded

import (
	"embed"
	"io/fs"
)

// FS embeds the catalog yaml files at build time.
//
//go:embed catalog/*
var FS embed.FS

// CatalogFS returns the embedded filesystem rooted at the catalog directory.
func CatalogFS() fs.FS {
	sub, err := fs.Sub(FS, "catalog")
	if err != nil {
		// The catalog directory is embedded at compile time; a failure
		// here means a broken build, not a runtime condition.
		panic(err)
	}
	return sub
}
