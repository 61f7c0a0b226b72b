package dashboard

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turbot/owid-covid-dashboard/pipeline"
	"github.com/turbot/owid-covid-dashboard/rate_limiter"
	"github.com/turbot/owid-covid-dashboard/report"
)

// Server serves the interactive dashboard over a prepared dataset.
// Runs are serialized: at most one fetch or selection is in progress at a time.
type Server struct {
	pipeline *pipeline.Pipeline
	engine   *gin.Engine

	mut     sync.Mutex
	dataset *pipeline.Dataset
}

func New(p *pipeline.Pipeline) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	s := &Server{
		pipeline: p,
		engine:   engine,
	}

	engine.GET("/", s.index)
	engine.GET("/healthz", s.health)
	api := engine.Group("/api")
	api.GET("/locations", s.locations)
	api.GET("/locations/:location", s.location)
	api.POST("/refresh", s.refresh)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// currentDataset returns the prepared dataset, preparing it on first use
// the caller must hold s.mut
func (s *Server) currentDataset(ctx context.Context) *pipeline.Dataset {
	if s.dataset == nil {
		d := s.pipeline.Prepare(ctx)
		if errors.Is(d.Err, rate_limiter.ErrLimited) {
			// not cached, the next request tries again
			return d
		}
		s.dataset = d
	}
	return s.dataset
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Title":       report.Title,
		"Description": report.Description,
	})
}

func (s *Server) health(c *gin.Context) {
	s.mut.Lock()
	phase := pipeline.PhaseStart
	if s.dataset != nil {
		phase = s.dataset.Phase()
	}
	s.mut.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"phase":  phase,
		"runs":   s.pipeline.Status(),
	})
}

func (s *Server) locations(c *gin.Context) {
	s.mut.Lock()
	defer s.mut.Unlock()

	d := s.currentDataset(c.Request.Context())
	if d.Err != nil {
		haltedResponse(c, d.State())
		return
	}
	c.JSON(http.StatusOK, locationsResponse{
		ExecutionId: d.ExecutionId,
		Url:         s.pipeline.Url,
		Locations:   d.Locations,
	})
}

func (s *Server) location(c *gin.Context) {
	s.mut.Lock()
	defer s.mut.Unlock()

	location := c.Param("location")
	d := s.currentDataset(c.Request.Context())
	state := d.Select(c.Request.Context(), location)

	switch state.Phase {
	case pipeline.PhaseHalted:
		haltedResponse(c, state)
	case pipeline.PhaseEmptySelection:
		c.JSON(http.StatusNotFound, gin.H{
			"location": location,
			"warning":  "no data available for the selected location",
		})
	default:
		c.JSON(http.StatusOK, newSelectionResponse(state))
	}
}

func (s *Server) refresh(c *gin.Context) {
	s.mut.Lock()
	defer s.mut.Unlock()

	d := s.pipeline.Prepare(c.Request.Context())
	if errors.Is(d.Err, rate_limiter.ErrLimited) {
		// keep serving the previous dataset
		c.JSON(http.StatusTooManyRequests, gin.H{"error": d.Err.Error()})
		return
	}
	s.dataset = d
	if d.Err != nil {
		haltedResponse(c, d.State())
		return
	}
	c.JSON(http.StatusOK, locationsResponse{
		ExecutionId: d.ExecutionId,
		Url:         s.pipeline.Url,
		Locations:   d.Locations,
	})
}

func haltedResponse(c *gin.Context, state *pipeline.State) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":     state.Err.Error(),
		"halted_in": state.HaltedIn,
	})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("dashboard request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
