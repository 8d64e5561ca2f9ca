package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/julianstephens/happyhour/internal/logger"
	"github.com/julianstephens/happyhour/internal/server/handlers"
)

// Handler is the set of endpoints the router serves.
type Handler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	ListHappyHours(w http.ResponseWriter, r *http.Request)
	ListZones(w http.ResponseWriter, r *http.Request)
	GetFavorites(w http.ResponseWriter, r *http.Request)
	PutFavorites(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler Handler
	router  *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(handler Handler, router *mux.Router) *Router {
	return &Router{
		handler: handler,
		router:  router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestIDMiddleware)

	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")

	// ?zone=&venue=&day=&at=&when=&all_day=&favorites_only=&max_price=&raw=
	r.router.HandleFunc("/v1/happyhours", r.handler.ListHappyHours).Methods("GET")
	r.router.HandleFunc("/v1/zones", r.handler.ListZones).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.handler.GetFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.handler.PutFavorites).Methods("PUT")
}

// requestIDMiddleware tags each request with a fresh ID, echoes it in the
// response header and logs the request once it completes.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(handlers.RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(handlers.WithRequestID(r.Context(), id)))

		logger.With("request_id", id).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
