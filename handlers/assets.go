package handlers

import (
	"net/http"

	"comicreader/assets"
)

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", assets.IndexContentType())
	w.Write(assets.Index())
}

func (s *Server) Asset(w http.ResponseWriter, r *http.Request) {
	body, contentType, ok := assets.Lookup(r.PathValue("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}
