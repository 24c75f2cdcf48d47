package handlers

import (
	"net/http"
	"strconv"

	"comicreader/utils"
)

// Image streams one file from the active directory.
// GET /images/{name}
func (s *Server) Image(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !utils.IsSafeImageName(name) {
		http.Error(w, "Invalid image name", http.StatusBadRequest)
		return
	}

	// The directory is resolved once; a concurrent switch does not affect
	// this read.
	data, err := s.lib.ReadImage(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", utils.ContentType(name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
