package web

import (
	"log"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func withLogging(logger *log.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger.Printf("REQ %s %s UA=%q From=%s", r.Method, r.URL.String(), r.UserAgent(), r.RemoteAddr)
		if v := r.Header.Get("Content-Length"); v != "" {
			logger.Printf("HDR Content-Length: %s", v)
		}
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		logger.Printf("RES %s %s status=%d bytes=%d in %s", r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start))
	})
}
