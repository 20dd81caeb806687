package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snippetkit/internal/web"
)

func main() {
	addrFlag := flag.String("addr", ":8080", "listen address, e.g. :80 or 0.0.0.0:8080")
	configFlag := flag.String("config", "", "optional YAML config file (overrides SNIPPETKIT_CONFIG)")
	flag.Parse()

	addr := *addrFlag
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stdout)

	cfg := web.DefaultConfig()
	if *configFlag != "" {
		if err := web.LoadConfigFile(*configFlag, &cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	handler := web.New(cfg)
	defer handler.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          log.New(os.Stdout, "HTTPERR ", log.LstdFlags|log.Lmicroseconds),
		ConnState: func(c net.Conn, s http.ConnState) {
			log.Printf("CONN %s %s", s.String(), c.RemoteAddr())
		},
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Listen error on %s: %v", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s (parser=%s)", addr, cfg.Parser)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("serve: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
