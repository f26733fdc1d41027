package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/koyomi-lab/koyomi/pkg/domain/interfaces"
	"github.com/koyomi-lab/koyomi/pkg/service/render"
	"github.com/m-mizutani/goerr/v2"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server serving rendered calendars and
// the grid JSON API
func NewServer(ctx context.Context, addr string, builder interfaces.CalendarBuilder) (*Server, error) {
	if builder == nil {
		return nil, goerr.New("calendar builder is required")
	}

	htmlRenderer, err := render.NewHTML()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create HTML renderer")
	}

	h := &handlers{
		builder: builder,
		html:    htmlRenderer,
		png:     render.NewPNG(""),
		ics:     render.NewICS(),
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(RequestIDMiddleware())
	router.Use(middleware.Recoverer)

	router.Get("/health", h.handleHealth)
	router.Get("/", h.handleHome)
	router.Get("/calendar/{year}", h.handleYearHTML)
	router.Get("/calendar/{year}.png", h.handleYearPNG)
	router.Get("/calendar/{year}.ics", h.handleYearICS)
	router.Get("/api/grid/{year}/{month}", h.handleMonthJSON)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// Router returns the handler, primarily for tests
func (s *Server) Router() http.Handler {
	return s.router
}
