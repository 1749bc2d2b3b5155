package http

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// spaHandler serves files from a directory and falls back to index.html for
// extensionless paths, so client-side routes survive a reload.
type spaHandler struct {
	root       string
	fileServer http.Handler
}

func newSPAHandler(dir string) (*spaHandler, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrStaticDirNotFound, dir)
	}
	return &spaHandler{
		root:       dir,
		fileServer: http.FileServer(http.Dir(dir)),
	}, nil
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	if urlPath == "/" {
		h.fileServer.ServeHTTP(w, r)
		return
	}

	if _, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(urlPath))); err == nil {
		h.fileServer.ServeHTTP(w, r)
		return
	}

	// Missing files with an extension are real asset requests.
	if path.Ext(urlPath) != "" {
		http.NotFound(w, r)
		return
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = "/"
	h.fileServer.ServeHTTP(w, r2)
}
