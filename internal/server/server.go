package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/searchable/core/search"
	"github.com/goto/searchable/internal/server/handlers"
	"github.com/goto/searchable/internal/server/middleware"
	"github.com/goto/searchable/pkg/statsd"
)

type Config struct {
	Host string `mapstructure:"host" default:"0.0.0.0"`
	Port int    `mapstructure:"port" default:"8080"`
}

func (cfg Config) addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down
// gracefully.
func Serve(
	ctx context.Context,
	cfg Config,
	logger log.Logger,
	searchService *search.Service,
	statsdReporter *statsd.Reporter,
) error {
	router := mux.NewRouter()
	router.Use(
		middleware.RequestID(),
		middleware.Monitoring(statsdReporter),
	)
	RegisterRoutes(router, handlers.NewSearchHandler(logger, searchService))

	srv := &http.Server{
		Addr:    cfg.addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

// RegisterRoutes wires the search API onto the router.
func RegisterRoutes(router *mux.Router, searchHandler *handlers.SearchHandler) {
	v1 := router.PathPrefix("/v1beta1").Subrouter()
	v1.Path("/entities").Methods(http.MethodGet).HandlerFunc(searchHandler.Entities)
	v1.Path("/entities/{name}/search").Methods(http.MethodGet).HandlerFunc(searchHandler.Search)
	v1.Path("/entities/{name}/search_columns").Methods(http.MethodGet).HandlerFunc(searchHandler.SearchColumns)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
}
