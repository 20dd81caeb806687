package web

import (
	"io"
	"net/http"
	"strconv"

	"snippetkit/internal/encoder"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(s.cfg.IndexHTML)))
	io.WriteString(w, s.cfg.IndexHTML)
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "pong\n")
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	out, err := encoder.Encode(req.Text)
	if err != nil {
		s.logger.Printf("Encoding Error: %v", err)
		writeJSON(w, http.StatusOK, encodeResponse{Result: encoder.FailureMessage, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, encodeResponse{Result: out})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	res := s.converterFor(req.Parser).Convert(r.Context(), req.HTML)
	for _, warn := range res.Warnings {
		s.logger.Printf("CONVERT %s", warn)
	}
	writeJSON(w, http.StatusOK, convertResponse{
		Head:         res.Head,
		Body:         res.Body,
		Instructions: res.Instructions,
		Warnings:     res.Warnings,
	})
}
