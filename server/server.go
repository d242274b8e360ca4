package server

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-viewer/config"
	"rental-viewer/models"
	"rental-viewer/services"
	"rental-viewer/utils"
)

//go:embed templates/index.html
var indexHTML string

// Querier answers filter queries for a dataset file; services.Viewer
// satisfies it.
type Querier interface {
	Query(ctx context.Context, path string, sel models.Selection) (*models.View, error)
}

// Server exposes the viewer over HTTP: an HTML page, a JSON API and CSV
// export, all reading files from the configured source directory.
type Server struct {
	cfg    *config.Config
	viewer Querier
	logger *utils.Logger
	router *gin.Engine
}

func New(cfg *config.Config, viewer Querier, logger *utils.Logger) *Server {
	s := &Server{cfg: cfg, viewer: viewer, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Accept", requestIDHeader},
			ExposeHeaders: []string{"Content-Disposition", requestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	router.SetHTMLTemplate(template.Must(template.New("index").Funcs(templateFuncs).Parse(indexHTML)))

	router.GET("/", s.index)
	router.GET("/healthz", s.health)

	api := router.Group("/api")
	api.GET("/files", s.listFiles)
	datasets := api.Group("/datasets/:file")
	datasets.GET("/options", s.options)
	datasets.GET("/listings", s.listings)
	datasets.GET("/export.csv", s.exportCSV)

	s.router = router
	return s
}

// Handler returns the HTTP handler, for tests and custom servers.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[http] listening on %s (source dir %s)", s.cfg.HTTPAddr, s.cfg.SourceDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("[http] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	var be *bindError
	switch {
	case errors.As(err, &be), errors.Is(err, errBadFileName):
		return http.StatusBadRequest
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnsupportedFormat),
		errors.Is(err, services.ErrNoHeader),
		errors.Is(err, services.ErrMalformedNumber),
		errors.Is(err, services.ErrSchemaMismatch):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
