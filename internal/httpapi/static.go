package httpapi

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// spa serves files from dir and falls back to index.html for client-side
// routes. Without a web dir every path is a 404.
func spa(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.NotFound(w, r)
			return
		}
		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" && fileExists(filepath.Join(dir, filepath.FromSlash(clean))) {
			fs.ServeHTTP(w, r)
			return
		}
		if fileExists(index) {
			http.ServeFile(w, r, index)
			return
		}
		http.NotFound(w, r)
	})
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
