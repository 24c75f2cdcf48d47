package handlers

import (
	"net/http"
	"strings"

	"comicreader/middleware"
	"comicreader/storage"
	"comicreader/utils"
)

// Server exposes the reader's HTTP routes over a shared Library.
type Server struct {
	lib *storage.Library
}

func New(lib *storage.Library) *Server {
	return &Server{lib: lib}
}

// Routes returns the complete handler, middleware included.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Page shell and embedded front end
	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("GET /assets/{name}", s.Asset)

	// API
	mux.HandleFunc("GET /api/images", s.Images)
	mux.HandleFunc("POST /api/select-dir", s.SelectDir)

	// Image bytes
	mux.HandleFunc("GET /images/{name}", s.Image)

	return middleware.WithLogging(middleware.WithSecurity(guardImagePath(mux)))
}

// guardImagePath rejects unsafe image names before the mux cleans the path,
// which would otherwise redirect /images/.. instead of refusing it.
func guardImagePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name, ok := strings.CutPrefix(r.URL.Path, "/images/"); ok && !utils.IsSafeImageName(name) {
			http.Error(w, "Invalid image name", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}
