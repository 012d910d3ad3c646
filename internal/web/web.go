// Package web serves the card page and its script.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var assets embed.FS

// Register serves the embedded page at "/". Register it after the API routes;
// paths with no matching file fall through to the next handler.
func Register(app *fiber.App) {
	root, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(root),
		MaxAge: 300,
	}))
}
