package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"comicreader/config"
)

type ImagesResponse struct {
	Images   []string `json:"images"`
	PageSize int      `json:"page_size"`
}

type SelectDirRequest struct {
	Path string `json:"path"`
}

type SelectDirResponse struct {
	OK      bool   `json:"ok"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// Images returns the current image list snapshot.
// GET /api/images
func (s *Server) Images(w http.ResponseWriter, r *http.Request) {
	snap := s.lib.Snapshot()
	writeJSON(w, http.StatusOK, ImagesResponse{
		Images:   snap.Images,
		PageSize: config.PageSize,
	})
}

// SelectDir switches the active directory.
// POST /api/select-dir
func (s *Server) SelectDir(w http.ResponseWriter, r *http.Request) {
	var req SelectDirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SelectDirResponse{Message: message(r, msgInvalidJSON)})
		return
	}

	path := strings.TrimSpace(req.Path)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, SelectDirResponse{Message: message(r, msgEmptyPath)})
		return
	}

	count, err := s.lib.Select(path)
	if err != nil {
		log.Printf("Error selecting directory %s: %v", path, err)
		writeJSON(w, http.StatusBadRequest, SelectDirResponse{Message: err.Error()})
		return
	}

	log.Printf("Selected directory %s (%d images)", path, count)
	writeJSON(w, http.StatusOK, SelectDirResponse{
		OK:      true,
		Count:   count,
		Message: message(r, msgLoaded),
	})
}
