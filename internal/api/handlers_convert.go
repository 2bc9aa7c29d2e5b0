package api

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgallion1/svgpaths"
	"github.com/dgallion1/svgpaths/internal/source"
	"github.com/dgallion1/svgpaths/shape"
)

// handleTree converts the request body and returns the nested JSON tree.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readSVGBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	tree, err := svgpaths.Parse(strings.NewReader(text), s.options())
	if err != nil {
		s.conversionError(w, r, err)
		return
	}
	containers, leaves := tree.Counts()
	s.orchestrator.Stats().Record(time.Since(start).Milliseconds(), leaves, containers)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tree)
}

// handlePaths converts the request body into a flat path document.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readSVGBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	out, err := svgpaths.Convert(strings.NewReader(text), s.options())
	if err != nil {
		s.conversionError(w, r, err)
		return
	}
	s.orchestrator.Stats().Record(time.Since(start).Milliseconds(), strings.Count(out, "<path "), 0)

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	io.WriteString(w, out)
}

func (s *Server) options() svgpaths.Options {
	return svgpaths.Options{MaxLineBytes: s.cfg.MaxLineBytes}
}

// readSVGBody reads a size-limited body and decodes it to UTF-8 using the
// request's charset. On failure it writes the error response itself.
func (s *Server) readSVGBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return "", false
	}
	text, err := source.DecodeText(data, r.Header.Get("Content-Type"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnsupportedMediaType)
		return "", false
	}
	return text, true
}

// conversionError maps conversion failures to status codes. Malformed input
// is 422; an over-long line is 413.
func (s *Server) conversionError(w http.ResponseWriter, r *http.Request, err error) {
	s.orchestrator.Stats().RecordFailure()

	var nfe *shape.NumericFieldError
	switch {
	case errors.As(err, &nfe), errors.Is(err, svgpaths.ErrStackUnderflow):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, bufio.ErrTooLong):
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
	default:
		s.log.Error("conversion failed", "path", r.URL.Path, "error", err)
		jsonError(w, "conversion failed", http.StatusInternalServerError)
	}
}
