package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"uniformes/internal/apierror"

	"github.com/gin-gonic/gin"
)

// Frontend serves the built single-page app for every unmatched path: the
// file itself when it exists under dir, index.html otherwise. Unknown /api
// paths get a JSON 404 instead of the app.
func Frontend(dir string) gin.HandlerFunc {
	root, err := filepath.Abs(dir)
	if err != nil {
		root = dir
	}
	index := filepath.Join(root, "index.html")

	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, apierror.New("Ruta no encontrada"))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, apierror.New("Ruta no encontrada"))
			return
		}

		// filepath.Join cleans "..", so the result can be checked against root.
		file := filepath.Join(root, filepath.FromSlash(p))
		if file == root || strings.HasPrefix(file, root+string(os.PathSeparator)) {
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, apierror.New("Frontend no disponible"))
	}
}
