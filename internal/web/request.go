package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"snippetkit/internal/convert"
)

type encodeRequest struct {
	Text string `json:"text" validate:"max=65536"`
}

type encodeResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

type convertRequest struct {
	HTML   string `json:"html" validate:"max=524288"`
	Parser string `json:"parser" validate:"omitempty,oneof=html browser"`
}

type convertResponse struct {
	Head         string            `json:"head"`
	Body         string            `json:"body"`
	Instructions string            `json:"instructions"`
	Warnings     []convert.Warning `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errEmptyBody = errors.New("empty request body")

// decodeRequest reads a JSON body of at most max bytes into v and
// validates it.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := s.validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s exceeds %s characters", strings.ToLower(fe.Field()), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
