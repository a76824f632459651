package http_server

import (
	"context"
	"net/http"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Scrape runs can legitimately take minutes, the write timeout has to
// outlive a full ingestion pass.
const (
	readTimeout  = 30 * time.Second
	writeTimeout = 15 * time.Minute
)

type Server struct {
	server *http.Server
	notify chan error
}

func New(handler http.Handler, address string) *Server {
	httpServer := &http.Server{
		Handler:      handler,
		Addr:         address,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	s := &Server{
		server: httpServer,
		notify: make(chan error, 1),
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.server.ListenAndServe()
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
