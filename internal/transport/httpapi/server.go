package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/pkg/log"
)

// maxChatBody leaves room for a 4000 character message in JSON escapes.
const maxChatBody = 64 << 10

// Server exposes chat sessions and the profile views as a JSON API.
type Server struct {
	srv *http.Server
}

func NewRouter(sessions *chat.Registry, profiles ProfileSource, origins []string) http.Handler {
	h := &handler{
		sessions: sessions,
		profiles: profiles,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	r := chi.NewRouter()
	r.Use(recoverer)
	r.Use(instrument)
	r.Use(cors.Handler(corsOptions(origins)))

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RequestSize(maxChatBody)).Post("/chat", h.postChat)
		r.Get("/chat/{sessionID}", h.getChat)
		r.Get("/profile", h.getProfile)
		r.Get("/memory-segments", h.getSegments)
	})

	return r
}

func NewServer(ctx context.Context, cfg config.HTTPConfig, sessions *chat.Registry, profiles ProfileSource) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(sessions, profiles, cfg.CORSOrigins),
			ReadHeaderTimeout: 10 * time.Second,
			// Handlers log through the base context logger
			BaseContext: func(net.Listener) context.Context {
				return context.WithoutCancel(ctx)
			},
		},
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http api")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
