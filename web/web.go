// Package web embeds the single-page admin client. The client keeps the
// bearer token and user profile in localStorage; the server stays fully
// stateless.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// Handler serves the embedded client assets, with index.html at the root.
func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The embedded tree is fixed at compile time; this cannot fail at
		// runtime unless the directory is renamed without updating Sub.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
