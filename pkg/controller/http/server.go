package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/inkwell/pkg/usecase"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

type Server struct {
	router     *chi.Mux
	authSecret []byte
}

type Options func(*Server)

// WithAuthSecret enables bearer token authentication with the given HS256
// signing secret. Without it the server serves everything as one anonymous
// user.
func WithAuthSecret(secret []byte) Options {
	return func(s *Server) {
		s.authSecret = secret
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.authSecret))

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", createNoteHandler(uc.Note))
			r.Get("/", listNotesHandler(uc.Note))
			r.Route("/{noteID}", func(r chi.Router) {
				r.Get("/", getNoteHandler(uc.Note))
				r.Put("/", editNoteHandler(uc.Note))
				r.Delete("/", deleteNoteHandler(uc.Note))
				r.Post("/append", appendChunkHandler(uc.Note))
			})
		})

		r.Get("/categories", categoriesHandler(uc.Note))
		r.Post("/chat", chatHandler(uc.Chat))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Header is already committed, nothing to report to the client.
		logging.Default().Warn("failed to encode response", "error", err.Error())
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
