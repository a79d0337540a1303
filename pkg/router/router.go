package router

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a small method-aware mux with segment wildcards ("*"). A
// trailing "*" swallows any number of remaining segments, which is what
// the swagger UI mount needs.
type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  map[string]bool       // track registered paths
	log    *zap.SugaredLogger
}

// New creates a router that logs every request through the given logger.
func New(log *zap.SugaredLogger) *Router {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		log:    log,
	}

	// Catch-all handler: exact match first, then wildcard routes
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		key := req.Method + ":" + req.URL.Path
		if h, ok := r.routes[key]; ok {
			h(lrw, req)
		} else if h, ok := r.matchWildcard(req.Method, req.URL.Path); ok {
			h(lrw, req)
		} else if r.paths[req.URL.Path] {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}

		r.log.Infow("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", lrw.statusCode,
			"duration", time.Since(start),
		)
	})

	return r
}

// matchWildcard picks the most specific wildcard pattern that matches:
// more segments beat fewer, fewer wildcards beat more. Deterministic
// regardless of registration order.
func (r *Router) matchWildcard(method, path string) (HandlerFunc, bool) {
	var best string
	bestSegments, bestStars := -1, -1
	for pattern := range r.paths {
		if !strings.Contains(pattern, "*") {
			continue
		}
		if !matchWildcardRoute(path, pattern) {
			continue
		}
		if _, ok := r.routes[method+":"+pattern]; !ok {
			continue
		}
		segments := strings.Count(pattern, "/")
		stars := strings.Count(pattern, "*")
		if segments > bestSegments || (segments == bestSegments && stars < bestStars) {
			best, bestSegments, bestStars = pattern, segments, stars
		}
	}
	if best == "" {
		return nil, false
	}
	return r.routes[method+":"+best], true
}

// matchWildcardRoute checks a request path against a wildcard pattern.
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing "*" matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if routeSegments[i] != "*" && requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, seg := range routeSegments {
		if seg == "*" {
			continue
		}
		if requestSegments[i] != seg {
			return false
		}
	}
	return true
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes[method+":"+path] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)    { r.register(http.MethodPut, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.register(http.MethodDelete, path, handler) }

// Handler exposes the underlying mux, mainly for httptest servers.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// Start blocks serving HTTP on addr.
func (r *Router) Start(addr string) error {
	r.log.Infow("server starting", "addr", addr)
	return http.ListenAndServe(addr, r.mux)
}

// loggingResponseWriter captures status codes for the access log.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
