// Package assets embeds the default word lists shipped with the advisor.
// Files are named <language>-<size>-<kind>.txt, one word per line.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed lists/*.txt
var files embed.FS

// Lists returns the embedded word lists rooted at the list directory.
func Lists() fs.FS {
	sub, err := fs.Sub(files, "lists")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
