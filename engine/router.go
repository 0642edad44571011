package engine

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Authenticator interface {
	WithAuthn(http.HandlerFunc) http.HandlerFunc
	WithLeadership(http.HandlerFunc) http.HandlerFunc
}

type noopAuthenticator struct{}

func (noopAuthenticator) WithAuthn(fn http.HandlerFunc) http.HandlerFunc      { return fn }
func (noopAuthenticator) WithLeadership(fn http.HandlerFunc) http.HandlerFunc { return fn }

type Router struct {
	router  *http.ServeMux
	handler http.Handler

	// Authenticator can be used to pass an authenticator implementation to other handlers.
	Authenticator
}

func NewRouter() *Router {
	return &Router{router: http.NewServeMux(), Authenticator: noopAuthenticator{}}
}

// Serve wires up the stdlib http server to the engine.
func (r *Router) Serve(addr string) Proc {
	return func(ctx context.Context) error {
		svr := &http.Server{Handler: r, Addr: addr}
		go func() {
			<-ctx.Done()
			slog.Warn("gracefully shutting down http server...")
			svr.Shutdown(context.Background())
		}()
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		slog.Info("the http server has shut down")
		return nil
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, rr *http.Request) {
	if r.handler != nil {
		r.handler.ServeHTTP(w, rr)
		return
	}
	r.router.ServeHTTP(w, rr)
}

// Use wraps every route in the given middleware. The last middleware added runs first.
func (r *Router) Use(mw func(http.Handler) http.Handler) {
	if r.handler == nil {
		r.handler = r.router
	}
	r.handler = mw(r.handler)
}

func (r *Router) HandleFunc(route string, fn http.HandlerFunc) {
	r.router.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWrapper{ResponseWriter: w, status: 200}
		fn(ww, r)
		slog.Info("http request", "url", r.URL.Path, "method", r.Method, "userAgent", r.UserAgent(), "latencyMS", time.Since(start).Milliseconds(), "status", ww.status)
	})
}

type responseWrapper struct {
	http.ResponseWriter
	status int
}

func (w *responseWrapper) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
