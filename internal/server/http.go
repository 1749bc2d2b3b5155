package server

import (
	"net/http"
	"sync/atomic"
	"time"
)

// swappableHandler routes every request to the handler stored last.
type swappableHandler struct {
	current atomic.Pointer[http.Handler]
}

func newSwappableHandler(h http.Handler) *swappableHandler {
	s := &swappableHandler{}
	s.store(h)
	return s
}

func (s *swappableHandler) store(h http.Handler) {
	s.current.Store(&h)
}

func (s *swappableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	(*s.current.Load()).ServeHTTP(w, r)
}

func newHTTPServer(handler *swappableHandler, addr string, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: requestTimeout,
		// no WriteTimeout: proxied streams may stay open
		IdleTimeout: 2 * requestTimeout,
	}
}
