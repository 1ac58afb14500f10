// Package web holds the layout templates and static assets compiled into the
// binary.
package web

import (
	"embed"
	"io/fs"
	"time"
)

//go:embed templates static
var FS embed.FS

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// AssetVersion stamps every static asset with the build's start time, since
// embedded files carry no modification time.
func AssetVersion(started time.Time) func(string) (time.Time, error) {
	return func(string) (time.Time, error) {
		return started, nil
	}
}
