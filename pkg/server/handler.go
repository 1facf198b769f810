package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/user/framecast/pkg/publisher"
)

const contentType = "text/plain; charset=utf-8"

// handleGet dispatches on the action query parameter. Any panic during
// request handling is converted to a 500; handler state is request-local so
// a failed request never corrupts the stores.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Request panicked: %v", rec)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}()

	switch r.URL.Query().Get("action") {
	case "new_frame":
		s.handleNewFrame(w, r)
	case "get_chunk":
		s.handleGetChunk(w, r)
	default:
		http.Error(w, "Invalid action.", http.StatusBadRequest)
	}
}

// handleNewFrame produces, encodes, and publishes one frame, returning
// "frame_id;chunk_count[;first_chunk]".
func (s *Server) handleNewFrame(w http.ResponseWriter, r *http.Request) {
	cached := parseCachedPaletteIDs(r.URL.Query().Get("cached_pids"))

	producer := s.rot.Current()
	result, err := s.pub.Publish(producer, cached)
	if err != nil {
		if errors.Is(err, publisher.ErrNoContent) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.logger.Error("Failed to publish frame: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	fmt.Fprint(w, result.Body())
}

// handleGetChunk re-serves one stored chunk as "frame_id;index;bytes".
func (s *Server) handleGetChunk(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	frameID := query.Get("frame_id")
	index, err := strconv.Atoi(query.Get("chunk"))
	if err != nil {
		http.Error(w, "Frame or Chunk not found.", http.StatusNotFound)
		return
	}

	chunk, err := s.store.Chunk(frameID, index)
	if err != nil {
		http.Error(w, "Frame or Chunk not found.", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	fmt.Fprintf(w, "%s;%d;%s", frameID, index, chunk)
}

// parseCachedPaletteIDs parses the comma-separated cached_pids hint. Any
// malformed entry voids the whole hint set; the request itself never fails
// on a bad hint.
func parseCachedPaletteIDs(raw string) map[int]bool {
	if raw == "" {
		return nil
	}
	ids := make(map[int]bool)
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		ids[id] = true
	}
	return ids
}
